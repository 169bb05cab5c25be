// Package config loads sbopak's runtime configuration. The configuration is a
// flat key=value file; "#" starts a comment, blank lines are ignored, and keys
// and values are trimmed of surrounding whitespace. The parser is strict: an
// unknown key, an empty key, or an empty value is a fatal error naming the
// offending line and file. The loaded Config is constructed once at startup
// and passed by reference into every component that needs it.
package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/sbopak/sbopak/pkg/errors"
)

// Default configuration values.
const (
	// DefaultConfigPath is where sbopak looks for its configuration.
	DefaultConfigPath = "/etc/sbopak/sbopak.conf"

	// DefaultTmpDir is the staging and build-output root.
	DefaultTmpDir = "/tmp/sbopak"

	// DefaultRepoRoot is the local SlackBuilds mirror path.
	DefaultRepoRoot = "/var/lib/sbopak/repo"

	// DefaultRepoGitURL is the upstream SlackBuilds.org mirror.
	DefaultRepoGitURL = "git://git.slackbuilds.org/slackbuilds.git"

	// DefaultRepoGitBranch pins the Slackware release track.
	DefaultRepoGitBranch = "15.0"
)

// Config represents the application configuration.
type Config struct {
	// TmpDir is the root for staging directories and build output.
	TmpDir string

	// Cleanup controls whether staging directories and consumed artifacts
	// are deleted after a successful install (and on abort).
	Cleanup bool

	// RepoRoot is the path of the local descriptor-mirror checkout.
	RepoRoot string

	// RepoGitURL is the remote the mirror is cloned from.
	RepoGitURL string

	// RepoGitBranch is the branch the mirror is pinned to.
	RepoGitBranch string
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		TmpDir:        DefaultTmpDir,
		Cleanup:       true,
		RepoRoot:      DefaultRepoRoot,
		RepoGitURL:    DefaultRepoGitURL,
		RepoGitBranch: DefaultRepoGitBranch,
	}
}

// Load reads the configuration file at path. A missing file is not an error;
// it yields the defaults. Any malformed line is fatal and nothing of the file
// is applied.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file %s", path)
	}
	defer func() { _ = file.Close() }()

	cfg := Default()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := raw
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, errors.Wrapf(errors.ErrConfigParse, "%s line %d: not a key=value pair: %q", path, lineNo, raw)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" {
			return nil, errors.Wrapf(errors.ErrConfigParse, "%s line %d: empty key: %q", path, lineNo, raw)
		}
		if value == "" {
			return nil, errors.Wrapf(errors.ErrConfigParse, "%s line %d: empty value: %q", path, lineNo, raw)
		}

		switch key {
		case "TMPDIR":
			cfg.TmpDir = value
		case "CLEANUP":
			b, err := parseBool(value)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrConfigParse, "%s line %d: %v: %q", path, lineNo, err, raw)
			}
			cfg.Cleanup = b
		case "REPO_ROOT":
			cfg.RepoRoot = value
		case "REPO_GIT_URL":
			cfg.RepoGitURL = value
		case "REPO_GIT_BRANCH":
			cfg.RepoGitBranch = value
		default:
			return nil, errors.Wrapf(errors.ErrConfigParse, "%s line %d: unknown key %q: %q", path, lineNo, key, raw)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return cfg, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, errors.Wrapf(errors.ErrConfigParse, "not a boolean value %q", value)
}
