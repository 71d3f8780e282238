package tui

import (
	"strings"
	"testing"
)

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits exactly", "hello", 5, "hello"},
		{"fits with room", "hi", 10, "hi"},
		{"truncated", "hello world", 8, "hello..."},
		{"truncated to 4", "abcdef", 4, "a..."},
		{"maxLen 3 no ellipsis", "abcdef", 3, "abc"},
		{"maxLen 2 no ellipsis", "abcdef", 2, "ab"},
		{"maxLen 1", "abcdef", 1, "a"},
		{"maxLen 0", "abcdef", 0, ""},
		{"empty string", "", 5, ""},
		{"single char fits", "a", 1, "a"},
		{"long asset path", "assets/2024/12/day31z.jpg", 15, "assets/2024/..."},
		{"multibyte runes truncated", "こんにちは世界abc", 5, "こん..."},
		{"multibyte runes fit", "こんにちは", 5, "こんにちは"},
		{"multibyte short truncate", "日本語テスト", 2, "日本"},
		{"multibyte single rune", "🚀rocket", 4, "🚀..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TruncateWithEllipsis(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestMinDimConstants(t *testing.T) {
	t.Parallel()
	if MinWidth < popupWidth {
		t.Errorf("MinWidth = %d, expected at least %d", MinWidth, popupWidth)
	}
	if MinHeight < gridTop+6*cellHeight {
		t.Errorf("MinHeight = %d, too short for a six-week month", MinHeight)
	}
}

func TestCompactWidthBreakpoint(t *testing.T) {
	t.Parallel()
	if CompactWidth <= MinWidth {
		t.Errorf("CompactWidth (%d) should be greater than MinWidth (%d)", CompactWidth, MinWidth)
	}
}

func TestGridFitsMinWidth(t *testing.T) {
	t.Parallel()
	if gridLeft+gridWidth > MinWidth {
		t.Errorf("grid needs %d columns, MinWidth is %d", gridLeft+gridWidth, MinWidth)
	}
}

func TestFooterCompactMode(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	f := Footer{
		Width:    CompactWidth - 1,
		Bindings: CalendarFooterBindings(km),
	}
	output := f.View()
	// In compact mode, descriptions should NOT appear.
	if strings.Contains(output, ":prev day") || strings.Contains(output, ":quit") {
		t.Error("compact footer should not contain key:desc pairs")
	}
	// But keys should still appear.
	if !strings.Contains(output, "←/h") {
		t.Error("compact footer should still contain key symbols")
	}
}

func TestFooterNormalMode(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	f := Footer{
		Width:    CompactWidth + 60,
		Bindings: PopupFooterBindings(km),
	}
	output := f.View()
	if !strings.Contains(output, "esc:close") {
		t.Errorf("normal footer should contain esc:close, got: %s", output)
	}
}

func TestStatusBarView(t *testing.T) {
	t.Parallel()

	t.Run("shows marked count", func(t *testing.T) {
		t.Parallel()
		sb := StatusBar{Root: "/srv/cal", Marked: 3, Days: 29, Width: 80}
		view := sb.View()
		if !strings.Contains(view, "3/29") {
			t.Errorf("expected marked count in view, got: %s", view)
		}
		if !strings.Contains(view, "/srv/cal") {
			t.Errorf("expected asset root in view, got: %s", view)
		}
	})

	t.Run("compact drops asset root", func(t *testing.T) {
		t.Parallel()
		sb := StatusBar{Root: "/srv/cal", Marked: 1, Days: 31, Width: CompactWidth - 1}
		view := sb.View()
		if strings.Contains(view, "/srv/cal") {
			t.Errorf("compact status bar should not show the root, got: %s", view)
		}
		if !strings.Contains(view, "1/31") {
			t.Errorf("compact status bar should keep the count, got: %s", view)
		}
	})

	t.Run("watching badge", func(t *testing.T) {
		t.Parallel()
		sb := StatusBar{Days: 30, Watching: true, Width: 80}
		if !strings.Contains(sb.View(), "watching") {
			t.Error("expected watching badge")
		}
	})
}

func TestPadLines(t *testing.T) {
	t.Parallel()
	if got := padLines("a\nb", 4); got != "a\nb\n\n" {
		t.Errorf("padLines = %q", got)
	}
	if got := padLines("a\nb\nc", 2); got != "a\nb\nc" {
		t.Errorf("padLines should not trim, got %q", got)
	}
}
