package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smk762/issh/internal/appconfig"
	"github.com/smk762/issh/internal/history"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m pickerModel, msg tea.Msg) pickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(pickerModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return pm
}

func testPicker(t *testing.T, hosts ...string) pickerModel {
	t.Helper()
	return newPicker(filepath.Join(t.TempDir(), "config"), hosts, appconfig.Default())
}

func TestNavigation_StaysInBounds(t *testing.T) {
	m := testPicker(t, "a", "b", "c", "d", "e")
	for i := 0; i < 10; i++ {
		m = press(t, m, keyRunes("j"))
	}
	if m.sel != 4 {
		t.Fatalf("expected sel clamped to 4, got %d", m.sel)
	}
	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.sel != 0 {
		t.Fatalf("expected sel clamped to 0, got %d", m.sel)
	}
}

func TestNavigation_FirstAndLast(t *testing.T) {
	m := testPicker(t, "a", "b", "c", "d", "e")
	m = press(t, m, keyRunes("G"))
	if m.sel != 4 {
		t.Fatalf("G should select last, got %d", m.sel)
	}
	m = press(t, m, keyRunes("k"))
	if m.sel != 3 {
		t.Fatalf("expected sel 3 after G then k, got %d", m.sel)
	}
	m = press(t, m, keyRunes("g"))
	if m.sel != 0 {
		t.Fatalf("g should select first, got %d", m.sel)
	}
}

func TestNavigation_UppercaseLetters(t *testing.T) {
	m := testPicker(t, "a", "b", "c")
	m = press(t, m, keyRunes("J"))
	if m.sel != 1 {
		t.Fatalf("J should move down, got %d", m.sel)
	}
	m = press(t, m, keyRunes("K"))
	if m.sel != 0 {
		t.Fatalf("K should move up, got %d", m.sel)
	}
}

func TestUnrecognizedKey_NoOp(t *testing.T) {
	m := testPicker(t, "a", "b")
	m = press(t, m, keyRunes("j"))
	before := m.View()
	m = press(t, m, keyRunes("x"))
	if m.sel != 1 || m.View() != before {
		t.Fatal("unrecognized key changed state")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{keyRunes("q"), keyRunes("Q"), tea.KeyMsg{Type: tea.KeyEsc}} {
		m := testPicker(t, "a")
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %v", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg for %v", msg)
		}
	}
}

func TestReload_ReclampsSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	write := func(lines ...string) {
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("Host a", "Host b", "Host c", "Host d", "Host e")
	m := newPicker(path, []string{"a", "b", "c", "d", "e"}, appconfig.Default())
	m = press(t, m, keyRunes("G"))

	write("Host a", "Host b")
	m = press(t, m, keyRunes("r"))
	if len(m.filtered) != 2 {
		t.Fatalf("expected 2 hosts after reload, got %d", len(m.filtered))
	}
	if m.sel != 1 {
		t.Fatalf("expected selection re-clamped to 1, got %d", m.sel)
	}
}

func TestReload_FailureKeepsPreviousList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("Host a\nHost b\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m := newPicker(path, []string{"a", "b"}, appconfig.Default())

	// Now only wildcard entries survive the filter: the load fails and the
	// previous list must stay untouched.
	if err := os.WriteFile(path, []byte("Host *\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m = press(t, m, keyRunes("r"))
	if len(m.filtered) != 2 {
		t.Fatalf("expected previous list preserved, got %v", m.filtered)
	}
}

func TestHelp_AnyKeyReturnsToMenu(t *testing.T) {
	m := testPicker(t, "a", "b")
	m = press(t, m, keyRunes("h"))
	if !strings.Contains(m.View(), "Help information") {
		t.Fatal("expected help screen")
	}
	// Keys are not interpreted as commands while in help.
	m = press(t, m, keyRunes("j"))
	if m.showHelp {
		t.Fatal("expected return to menu")
	}
	if m.sel != 0 {
		t.Fatalf("help dismissal moved selection: %d", m.sel)
	}
}

func TestView_StartsAtSelection(t *testing.T) {
	m := testPicker(t, "alpha", "beta", "gamma", "delta")
	m = press(t, m, keyRunes("G"))
	view := m.View()
	if !strings.Contains(view, "> delta") {
		t.Fatalf("expected selected marker on delta, got:\n%s", view)
	}
	if strings.Contains(view, "alpha") {
		t.Fatalf("hosts above the selection should not render:\n%s", view)
	}
}

func TestView_StopsAtWindowBoundary(t *testing.T) {
	m := testPicker(t, "a", "b", "c", "d", "e")
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 4})
	view := m.View()
	if !strings.Contains(view, "> a") || !strings.Contains(view, "   b") {
		t.Fatalf("expected first two hosts rendered:\n%s", view)
	}
	if strings.Contains(view, "   c") {
		t.Fatalf("expected rendering to stop at window boundary:\n%s", view)
	}
}

func TestFilter_NarrowsAndClamps(t *testing.T) {
	m := testPicker(t, "bastion", "web1", "web2")
	m = press(t, m, keyRunes("G"))
	m = press(t, m, keyRunes("/"))
	m = press(t, m, keyRunes("w"))
	m = press(t, m, keyRunes("e"))
	m = press(t, m, keyRunes("b"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.filtered) != 2 {
		t.Fatalf("expected 2 filtered hosts, got %v", m.filtered)
	}
	if m.sel > len(m.filtered)-1 {
		t.Fatalf("selection out of bounds after filter: %d", m.sel)
	}
}

func TestConnect_NoHostsIsNoOp(t *testing.T) {
	m := testPicker(t)
	if cmd := m.connectCmd(); cmd != nil {
		t.Fatal("expected no command with an empty list")
	}
}

func TestConnect_ProducesExecCommand(t *testing.T) {
	m := testPicker(t, "bastion")
	if cmd := m.connectCmd(); cmd == nil {
		t.Fatal("expected an exec command")
	}
}

func TestSessionClosed_TouchesHistory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m := testPicker(t, "bastion")
	press(t, m, sessionClosedMsg{alias: "bastion"})
	got, err := history.LastUsed()
	if err != nil {
		t.Fatal(err)
	}
	if got["bastion"] <= 0 {
		t.Fatalf("expected history touch, got %+v", got)
	}
}

func TestEditorClosed_TriggersReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("Host a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m := newPicker(path, []string{"a"}, appconfig.Default())

	if err := os.WriteFile(path, []byte("Host a\nHost b\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m = press(t, m, editorClosedMsg{})
	if len(m.filtered) != 2 {
		t.Fatalf("expected reload after editor close, got %v", m.filtered)
	}
}
