// Package config locates and parses the SSH client configuration file into
// the list of connectable host aliases shown by the picker.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvConfigPath overrides the default ~/.ssh/config location when set.
const EnvConfigPath = "ISSH_CONFIG"

// ConfigError reports a fatal startup problem with the SSH config: the file
// is missing, or it yields no connectable host aliases.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// ResolvePath returns the SSH config path, preferring the ISSH_CONFIG
// environment variable over ~/.ssh/config. The path is resolved once at
// startup and treated as immutable for the process lifetime.
func ResolvePath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".ssh", "config"), nil
}

// Load parses the SSH config at path and returns its host aliases sorted
// with a case-sensitive ordinal sort. Duplicates are preserved.
//
// Returns *ConfigError when the file does not exist or contains no usable
// host entries; any other read failure is wrapped. Load never mutates shared
// state, so a failed reload leaves the caller's previous list intact.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{Path: path, Reason: "no SSH config file detected"}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	hosts, err := parseHosts(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(hosts) == 0 {
		return nil, &ConfigError{Path: path, Reason: "no SSH hosts found"}
	}
	sort.Strings(hosts)
	return hosts, nil
}

// parseHosts applies the line filter and extracts the second token of every
// surviving line. The rules are deliberately literal:
//
//   - blank lines are skipped
//   - indented lines are option lines inside a Host block, skipped
//   - lines whose first non-blank character is '#' are comments, skipped
//   - lines containing '*' anywhere are wildcard patterns, not directly
//     connectable, skipped
//   - lines with fewer than two tokens are malformed and silently skipped
func parseHosts(r io.Reader) ([]string, error) {
	var hosts []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		if strings.Contains(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		hosts = append(hosts, fields[1])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return hosts, nil
}
