// Package config provides repository configuration management,
// including reading and writing the giddy configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"giddy.dev/giddy/internal/git"
)

// RepoConfig represents the repository configuration
type RepoConfig struct {
	DefaultBranch *string `json:"defaultBranch,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".giddy_config")
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// SetDefaultBranch writes the default branch name into the config file
func SetDefaultBranch(repoRoot, branchName string) error {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		config = &RepoConfig{}
	}
	config.DefaultBranch = &branchName

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// GetDefaultBranch resolves the repository's default branch name:
// the config file wins, then git's init.defaultBranch, then "main".
func GetDefaultBranch(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.DefaultBranch != nil && *config.DefaultBranch != "" {
		return *config.DefaultBranch, nil
	}

	if configured, err := git.RunGitCommand("config", "--get", "init.defaultBranch"); err == nil && configured != "" {
		return configured, nil
	}

	return "main", nil
}
