// Package editor resolves the user's preferred text editor and builds the
// command that opens the SSH config file in it.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/google/shlex"
)

// Resolve returns the editor argv. $EDITOR takes precedence and is split
// with shell-style tokenization so values like "code --wait" work; the
// fallback argument (from app config) is consulted next, then a platform
// default.
func Resolve(fallback string) ([]string, error) {
	for _, candidate := range []string{os.Getenv("EDITOR"), fallback} {
		if candidate == "" {
			continue
		}
		argv, err := shlex.Split(candidate)
		if err != nil {
			return nil, fmt.Errorf("parse editor command %q: %w", candidate, err)
		}
		if len(argv) > 0 {
			return argv, nil
		}
	}
	return []string{platformDefault()}, nil
}

func platformDefault() string {
	switch runtime.GOOS {
	case "windows":
		return "notepad.exe"
	case "darwin":
		return "nano"
	default:
		return "vi"
	}
}

// Command builds the exec.Cmd that opens configPath in the resolved editor.
// The config path is always the final argument.
func Command(fallback, configPath string) (*exec.Cmd, error) {
	argv, err := Resolve(fallback)
	if err != nil {
		return nil, err
	}
	args := append(argv[1:], configPath)
	return exec.Command(argv[0], args...), nil
}
