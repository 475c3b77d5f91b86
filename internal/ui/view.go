package ui

import "strings"

// menuHeaderRows is the fixed offset before the first host row: the header
// line plus the filter/blank line.
const menuHeaderRows = 2

func (m pickerModel) View() string {
	if m.showHelp {
		return m.helpView()
	}
	return m.menuView()
}

// menuView renders the host menu. Rendering starts at the current
// selection so the selected item is always the top visible row, and stops
// at the window boundary instead of overflowing.
func (m pickerModel) menuView() string {
	var b strings.Builder
	b.WriteString(m.headerStyle.Render("Select an SSH host (press h for help)"))
	b.WriteString("\n")
	if m.filterMode || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString("  (no hosts matched)\n")
		return b.String()
	}

	rows := len(m.filtered) - m.sel
	if m.height > 0 && m.height-menuHeaderRows < rows {
		rows = m.height - menuHeaderRows
	}
	for i, host := range m.filtered[m.sel:] {
		if i >= rows {
			break
		}
		if i == 0 {
			b.WriteString(m.selectedStyle.Render(" > " + host))
		} else {
			b.WriteString("   " + host)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m pickerModel) helpView() string {
	var b strings.Builder
	b.WriteString(m.headerStyle.Render("Help information"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join([]string{
		"  h          This help screen",
		"  q or Esc   Quit the program",
		"  e          Edit SSH config file",
		"  r          Reload SSH hosts from config file",
		"  Down or j  Move selection down",
		"  Up or k    Move selection up",
		"  Right, l or Enter  SSH to current selection",
		"  g          Move to first item",
		"  G          Move to last item",
		"  /          Filter hosts",
	}, "\n"))
	b.WriteString("\n\nPress any key to continue\n")
	return b.String()
}
