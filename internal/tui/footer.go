package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// CalendarFooterBindings returns footer bindings while browsing the grid.
func CalendarFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.PrevMonth, km.NextMonth, km.Today, km.Open, km.Quit}
}

// PopupFooterBindings returns footer bindings while a popup is open.
func PopupFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Left, km.Right, km.PrevMonth, km.NextMonth, km.Open, km.Close, km.Quit}
}
