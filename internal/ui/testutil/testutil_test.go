package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with multiple codes",
			input: "\x1b[1;32mbold green\x1b[0m",
			want:  "bold green",
		},
		{
			name:  "cursor movement",
			input: "\x1b[2Kcleared",
			want:  "cleared",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[1m世界\x1b[0m ok"); got != 7 {
		t.Errorf("MeasureWidth = %d, want 7", got)
	}
}

func TestFindLine(t *testing.T) {
	output := "first line\n‹ 2/5 ›\nlast line"

	if got := FindLine(output, "2/5"); got != "‹ 2/5 ›" {
		t.Errorf("FindLine = %q, want %q", got, "‹ 2/5 ›")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q, want empty", got)
	}
}

func TestLocate(t *testing.T) {
	view := "\x1b[1mtitle\x1b[0m\n世界 \x1b[31m›\x1b[0m next"

	x, y, ok := Locate(view, "›")
	if !ok || x != 5 || y != 1 {
		t.Errorf("Locate(›) = (%d, %d, %v), want (5, 1, true)", x, y, ok)
	}
	if _, _, ok := Locate(view, "missing"); ok {
		t.Error("Locate(missing) should not be found")
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\nb\n\n  \n")
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("SplitLines = %q, want [a b]", lines)
	}
}

func TestKey(t *testing.T) {
	tests := []string{"left", "right", "tab", "shift+tab", "ctrl+c", "q", "?"}
	for _, k := range tests {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

func TestMouseHelpers(t *testing.T) {
	if m := Press(3, 4); m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft || m.X != 3 || m.Y != 4 {
		t.Errorf("Press = %+v", m)
	}
	if m := Release(1, 2); m.Action != tea.MouseActionRelease {
		t.Errorf("Release = %+v", m)
	}
	if m := Motion(1, 2); m.Action != tea.MouseActionMotion {
		t.Errorf("Motion = %+v", m)
	}
	if ExecuteCmd(nil) != nil {
		t.Error("ExecuteCmd(nil) should be nil")
	}
}
