// Package history persists last-connected timestamps per host alias.
// This is usage history for the list command; UI state is never persisted.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/smk762/issh/internal/appconfig"
)

type store struct {
	LastUsed map[string]int64 `json:"last_used"`
}

func filePath() (string, error) {
	dir, err := appconfig.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Touch records a successful connection to a host alias.
func Touch(alias string) error {
	st, err := load()
	if err != nil {
		return err
	}
	if st.LastUsed == nil {
		st.LastUsed = map[string]int64{}
	}
	st.LastUsed[alias] = time.Now().Unix()
	return save(st)
}

// LastUsed returns last connection timestamps by alias.
func LastUsed() (map[string]int64, error) {
	st, err := load()
	if err != nil {
		return nil, err
	}
	return st.LastUsed, nil
}

// SortRecent returns a new slice sorted by recent connection (desc), then alias.
func SortRecent(aliases []string, lastUsed map[string]int64) []string {
	out := append([]string(nil), aliases...)
	sort.Slice(out, func(i, j int) bool {
		ti := lastUsed[out[i]]
		tj := lastUsed[out[j]]
		if ti != tj {
			return ti > tj
		}
		return out[i] < out[j]
	})
	return out
}

func load() (store, error) {
	path, err := filePath()
	if err != nil {
		return store{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store{LastUsed: map[string]int64{}}, nil
		}
		return store{}, err
	}
	var st store
	if err := json.Unmarshal(b, &st); err != nil {
		return store{LastUsed: map[string]int64{}}, nil
	}
	if st.LastUsed == nil {
		st.LastUsed = map[string]int64{}
	}
	return st, nil
}

func save(st store) error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
