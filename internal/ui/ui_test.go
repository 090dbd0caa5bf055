package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name           string
		done, total, w int
		want           string
	}{
		{"empty list", 0, 0, 4, "[░░░░] 0/0"},
		{"half", 1, 2, 4, "[██░░] 1/2"},
		{"full", 3, 3, 4, "[████] 3/3"},
		{"overflow clamps", 5, 3, 4, "[████] 5/3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.done, tt.total, tt.w); got != tt.want {
				t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.w, got, tt.want)
			}
		})
	}
}

func TestProgressBar_DefaultWidth(t *testing.T) {
	got := ProgressBar(0, 1, 0)
	if n := strings.Count(got, "░"); n != 28 {
		t.Errorf("default width = %d cells, want 28", n)
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, "always": ColorAlways, " never ": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = prevOut, prevErr })

	OK("added")
	Fail("boom")
	if !strings.Contains(out.String(), "added") {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPanel(t *testing.T) {
	var out bytes.Buffer
	prev := Stdout
	Stdout = &out
	t.Cleanup(func() { Stdout = prev })

	Panel([]string{"first", "second"})
	got := out.String()
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("panel = %q", got)
	}
	if !strings.Contains(got, "╭") {
		t.Errorf("panel has no rounded frame: %q", got)
	}
	if PanelBg == "" {
		t.Error("panel background token is empty")
	}
}
