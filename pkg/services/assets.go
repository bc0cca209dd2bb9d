package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type AssetFile struct {
	Name string `json:"name"`
	Path string `json:"path"` // Path relative to the static dir
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// ListAssets walks the static dir. A missing dir has no assets.
func ListAssets(staticDir string) ([]AssetFile, error) {
	var files []AssetFile
	err := filepath.WalkDir(staticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		files = append(files, AssetFile{
			Name: d.Name(),
			Path: rel,
			Size: info.Size(),
			URL:  "/" + rel,
		})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", staticDir, err)
	}
	return files, nil
}

// CopyAssets copies every asset of staticDir into outDir, keeping the
// relative layout.
func CopyAssets(staticDir, outDir string) (int, error) {
	assets, err := ListAssets(staticDir)
	if err != nil {
		return 0, err
	}

	for _, asset := range assets {
		dstPath := SafeJoin(outDir, "", asset.Path)
		if dstPath == "" {
			return 0, fmt.Errorf("invalid asset path %q", asset.Path)
		}
		if err := copyFile(filepath.Join(staticDir, filepath.FromSlash(asset.Path)), dstPath); err != nil {
			return 0, fmt.Errorf("copy %s: %w", asset.Path, err)
		}
	}
	return len(assets), nil
}

func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
