package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var (
	RepoPath    = "./repo"
	ContentPath = "./repo/content/articles"
	StaticPath  = "./repo/static"
	OutputPath  = "./dist"

	// SiteURL overrides base_url from the site config when set.
	SiteURL = ""

	// Build settings
	BuildConcurrency = 20
	MarkdownEngine   = "pipeline"

	// Server settings
	ListenAddr    = ":8080"
	SessionSecret = ""

	// Git settings
	GitUserEmail = "bot@costsite.local"
	GitUserName  = "Costsite Bot"
	GitBranch    = "main"
	GitRemote    = "origin"
)

var OauthConf *oauth2.Config

func Init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("err", err))
	}

	appURL := getEnv("APP_URL", "http://localhost:8080")
	redirectURL := getEnv("GITHUB_REDIRECT_URL", appURL+"/auth/callback")

	RepoPath = getEnv("REPO_PATH", "./repo")
	ContentPath = getEnv("CONTENT_PATH", filepath.Join(RepoPath, "content", "articles"))
	StaticPath = getEnv("STATIC_PATH", filepath.Join(RepoPath, "static"))
	OutputPath = getEnv("OUTPUT_PATH", "./dist")
	SiteURL = getEnv("SITE_URL", "")

	MarkdownEngine = getEnv("MARKDOWN_ENGINE", "pipeline")

	ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	SessionSecret = getEnv("SESSION_SECRET", "")

	GitUserEmail = getEnv("GIT_USER_EMAIL", "bot@costsite.local")
	GitUserName = getEnv("GIT_USER_NAME", "Costsite Bot")
	GitBranch = getEnv("GIT_BRANCH", "main")
	GitRemote = getEnv("GIT_REMOTE", "origin")

	if bc := os.Getenv("BUILD_CONCURRENCY"); bc != "" {
		if val, err := strconv.Atoi(bc); err == nil && val > 0 {
			BuildConcurrency = val
		}
	}

	OauthConf = &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		Scopes:       []string{"repo"},
		Endpoint:     github.Endpoint,
		RedirectURL:  redirectURL,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
