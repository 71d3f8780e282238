package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSemanticColorsDefined(t *testing.T) {
	t.Parallel()
	colors := map[string]lipgloss.Color{
		"colorPrimary":       colorPrimary,
		"colorAccent":        colorAccent,
		"colorMuted":         colorMuted,
		"colorMutedLight":    colorMutedLight,
		"colorWhite":         colorWhite,
		"colorBrightWhite":   colorBrightWhite,
		"colorSurface":       colorSurface,
		"colorSurfaceBright": colorSurfaceBright,
		"colorSurfaceDim":    colorSurfaceDim,
		"colorBlue":          colorBlue,
	}
	for name, c := range colors {
		if string(c) == "" {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestStatusBarStyleProperties(t *testing.T) {
	t.Parallel()
	bg := styleStatusBar.GetBackground()
	if _, noColor := bg.(lipgloss.NoColor); noColor {
		t.Error("status bar should have a background color set")
	}
	if !styleStatusBar.GetBold() {
		t.Error("status bar should be bold")
	}
}

func TestPopupBorderIsRounded(t *testing.T) {
	t.Parallel()
	rounded := lipgloss.RoundedBorder()
	for name, s := range map[string]lipgloss.Style{
		"idle":     stylePopupBorder,
		"dragging": stylePopupBorderDragging,
	} {
		border := s.GetBorderStyle()
		if border.TopLeft != rounded.TopLeft || border.TopRight != rounded.TopRight {
			t.Errorf("%s popup should use rounded border", name)
		}
	}
}

func TestFooterStyleHasTopBorder(t *testing.T) {
	t.Parallel()
	if !styleFooter.GetBorderTop() {
		t.Error("footer style should have a top border")
	}
	if styleFooter.GetBorderBottom() {
		t.Error("footer should not have a bottom border")
	}
}

func TestDayStylesDistinct(t *testing.T) {
	t.Parallel()
	fg := map[string]lipgloss.TerminalColor{
		"past":   styleDayPast.GetForeground(),
		"today":  styleDayToday.GetForeground(),
		"future": styleDayFuture.GetForeground(),
	}
	seen := make(map[lipgloss.TerminalColor]string)
	for name, c := range fg {
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share a foreground color", name, other)
		}
		seen[c] = name
	}
	if !styleDayToday.GetBold() {
		t.Error("today should be bold")
	}
}
