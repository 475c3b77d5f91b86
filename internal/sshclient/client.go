// Package sshclient launches SSH sessions via the system ssh binary.
//
// It does not implement the SSH protocol. Shelling out to ssh means the
// user's full SSH configuration (keys, agents, ProxyJump chains) applies
// without reimplementing any of it. The host alias is the only argument
// passed, so OpenSSH resolves every directive from the config file itself.
//
// All arguments go through exec.Command's argv (never a shell), so host
// aliases containing shell metacharacters cannot inject commands.
package sshclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Client builds and launches SSH processes. It is stateless and safe for
// concurrent use; the zero value is not useful, use New.
type Client struct {
	bin string
}

// New creates a client that invokes the given binary, or "ssh" when empty.
func New(bin string) *Client {
	if bin == "" {
		bin = "ssh"
	}
	return &Client{bin: bin}
}

// EnsureBinary checks that the connect binary is available on PATH.
// Called early during startup so a missing ssh produces a clear message
// instead of a confusing exec error mid-session.
func (c *Client) EnsureBinary() error {
	if _, err := exec.LookPath(c.bin); err != nil {
		return fmt.Errorf("%s binary not found in PATH", c.bin)
	}
	return nil
}

// ConnectCommand creates the exec.Cmd for an interactive session to the
// host alias. No stdio is configured; the caller connects the terminal
// (tea.ExecProcess in the TUI, RunInteractive for the CLI).
func (c *Client) ConnectCommand(alias string) *exec.Cmd {
	return exec.Command(c.bin, alias)
}

// RunInteractive runs an interactive session to the host alias inside a
// pseudo-terminal, blocking until the session ends. The PTY gives ssh a
// controlling terminal for password prompts and remote line editing.
//
// If ctx is cancelled while the session is active the process is killed.
func (c *Client) RunInteractive(ctx context.Context, alias string) error {
	cmd := c.ConnectCommand(alias)

	f, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer f.Close()

	// Keystrokes flow into the PTY master until it closes after exit.
	go func() {
		_, _ = io.Copy(f, os.Stdin)
	}()

	// Blocks until the process exits and the PTY master returns EOF.
	_, _ = io.Copy(os.Stdout, f)

	if ctx.Err() != nil {
		_ = cmd.Process.Kill()
	}
	return cmd.Wait()
}
