package services

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"costsite/pkg/config"
)

// ExecuteGitWithToken runs git in dir with the configured remote replaced by
// an authenticated URL. The returned log never contains the token.
func ExecuteGitWithToken(dir, token string, args ...string) (string, error) {
	cmdGetURL := exec.Command("git", "remote", "get-url", config.GitRemote)
	cmdGetURL.Dir = dir
	outURL, err := cmdGetURL.Output()
	if err != nil {
		return "Failed to get remote url", fmt.Errorf("get remote url: %w", err)
	}
	remoteURL := strings.TrimSpace(string(outURL))
	authenticatedURL, err := authenticatedRemote(remoteURL, token)
	if err != nil {
		return "Invalid remote url", err
	}

	newArgs := make([]string, len(args))
	copy(newArgs, args)
	for i, v := range newArgs {
		if v == config.GitRemote {
			newArgs[i] = authenticatedURL
		}
	}

	cmd := exec.Command("git", newArgs...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return redactLog(string(output), token, authenticatedURL, remoteURL), err
}

func authenticatedRemote(remoteURL, token string) (string, error) {
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("parse remote url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", fmt.Errorf("remote %q is not an http(s) url", remoteURL)
	}
	u.User = url.UserPassword("oauth2", token)
	return u.String(), nil
}

func redactLog(log, token, authenticatedURL, remoteURL string) string {
	safeLog := strings.ReplaceAll(log, authenticatedURL, remoteURL)
	if token != "" {
		safeLog = strings.ReplaceAll(safeLog, token, "***")
	}
	return safeLog
}

// SyncRepo pulls the latest content into the repository checkout.
func SyncRepo(token string) (string, error) {
	return ExecuteGitWithToken(config.RepoPath, token, "pull", config.GitRemote, config.GitBranch)
}

// PublishRepo commits every pending content change and pushes it.
func PublishRepo(token string) (string, error) {
	addCmd := exec.Command("git", "add", ".")
	addCmd.Dir = config.RepoPath
	if out, err := addCmd.CombinedOutput(); err != nil {
		return string(out), fmt.Errorf("git add: %w", err)
	}

	msg := fmt.Sprintf("Update content: %s", time.Now().Format("2006-01-02 15:04:05"))
	commitCmd := exec.Command("git",
		"-c", "user.name="+config.GitUserName,
		"-c", "user.email="+config.GitUserEmail,
		"commit", "-m", msg,
	)
	commitCmd.Dir = config.RepoPath
	// nothing to commit is not an error worth stopping the push for
	_ = commitCmd.Run()

	return ExecuteGitWithToken(config.RepoPath, token, "push", config.GitRemote, config.GitBranch)
}
