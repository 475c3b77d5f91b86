// Package doctor runs local diagnostics for the picker environment.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"sort"

	"github.com/smk762/issh/internal/appconfig"
	"github.com/smk762/issh/internal/config"
	"github.com/smk762/issh/internal/editor"
	"github.com/smk762/issh/internal/sshclient"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Issue struct {
	Severity       Severity `json:"severity"`
	Check          string   `json:"check"`
	Target         string   `json:"target"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

type Report struct {
	Issues []Issue `json:"issues"`
}

// Run executes startup diagnostics: connect binary, config file, usable
// host entries, and editor resolution.
func Run() (Report, error) {
	cfg, err := appconfig.Load()
	if err != nil {
		cfg = appconfig.Default()
	}

	var issues []Issue

	if err := sshclient.New(cfg.SSHCommand).EnsureBinary(); err != nil {
		issues = append(issues, Issue{
			Severity:       SeverityHigh,
			Check:          "ssh-binary",
			Target:         "PATH",
			Message:        err.Error(),
			Recommendation: "install OpenSSH client and ensure `ssh` is on PATH",
		})
	}

	path, err := config.ResolvePath()
	if err != nil {
		return Report{Issues: issues}, fmt.Errorf("resolve config path: %w", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		issues = append(issues, Issue{
			Severity:       SeverityHigh,
			Check:          "config-missing",
			Target:         path,
			Message:        "SSH config file not found",
			Recommendation: "create the file or point ISSH_CONFIG at an existing one",
		})
	} else if _, loadErr := config.Load(path); loadErr != nil {
		issues = append(issues, Issue{
			Severity:       SeverityHigh,
			Check:          "no-hosts",
			Target:         path,
			Message:        loadErr.Error(),
			Recommendation: "add at least one non-wildcard Host entry",
		})
	}

	if argv, resolveErr := editor.Resolve(cfg.Editor); resolveErr != nil {
		issues = append(issues, Issue{
			Severity:       SeverityMedium,
			Check:          "editor-command",
			Target:         "$EDITOR",
			Message:        resolveErr.Error(),
			Recommendation: "fix the quoting in $EDITOR or the editor config value",
		})
	} else if _, lookErr := exec.LookPath(argv[0]); lookErr != nil {
		issues = append(issues, Issue{
			Severity:       SeverityLow,
			Check:          "editor-binary",
			Target:         argv[0],
			Message:        "editor binary not found in PATH",
			Recommendation: "set $EDITOR to an installed editor",
		})
	}

	sort.Slice(issues, func(i, j int) bool {
		ri := severityRank(issues[i].Severity)
		rj := severityRank(issues[j].Severity)
		if ri != rj {
			return ri > rj
		}
		if issues[i].Check != issues[j].Check {
			return issues[i].Check < issues[j].Check
		}
		return issues[i].Target < issues[j].Target
	})
	return Report{Issues: issues}, nil
}

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}
