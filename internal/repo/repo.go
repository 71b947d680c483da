package repo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Setup prepares a working copy of the repository at dir: clone if the
// directory is absent, pull if it already holds a git repository, and
// remove-and-reclone if it holds something else. force removes an existing
// directory first. A failed pull is downgraded to a diagnostic and the
// existing tree is used as-is.
func Setup(url, dir string, force bool, logf func(format string, args ...any)) error {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if force {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logf("cloning repository to %s...", dir)
		if err := clone(url, dir); err != nil {
			return err
		}
		logf("repository cloned")
		return nil
	}

	if !isGitRepo(dir) {
		logf("%s exists but is not a git repository; recloning", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
		if err := clone(url, dir); err != nil {
			return err
		}
		logf("repository cloned")
		return nil
	}

	logf("repository exists, pulling latest changes...")
	if err := pull(dir); err != nil {
		logf("error updating repository: %v", err)
		logf("proceeding with existing files")
		return nil
	}
	logf("repository updated")
	return nil
}

func clone(url, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}
	if _, err := gitOutput("", "clone", url, dir); err != nil {
		return fmt.Errorf("git clone %s: %w", url, err)
	}
	return nil
}

func pull(dir string) error {
	if _, err := gitOutput(dir, "pull", "--ff-only"); err != nil {
		return fmt.Errorf("git pull: %w", err)
	}
	return nil
}

func isGitRepo(dir string) bool {
	out, err := gitOutput(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
