package tui

import "testing"

func TestDefconThresholds(t *testing.T) {
	tests := []struct {
		tension float64
		want    int
	}{
		{0.0, 5},
		{0.19, 5},
		{0.2, 4},
		{0.45, 3},
		{0.6, 2},
		{0.8, 1},
		{1.0, 1},
	}
	for _, tt := range tests {
		if got := defcon(tt.tension); got != tt.want {
			t.Errorf("defcon(%v) = %d, want %d", tt.tension, got, tt.want)
		}
	}
}

func TestSystemStatus(t *testing.T) {
	tests := []struct {
		corruption float64
		want       string
	}{
		{0.0, "NOMINAL"},
		{0.3, "DEGRADED"},
		{0.6, "UNSTABLE"},
		{0.9, "CRITICAL"},
	}
	for _, tt := range tests {
		if got := systemStatus(tt.corruption); got != tt.want {
			t.Errorf("systemStatus(%v) = %q, want %q", tt.corruption, got, tt.want)
		}
	}
}

func TestMoodLabel(t *testing.T) {
	tests := []struct {
		stability float64
		want      string
	}{
		{0.9, "LOYAL"},
		{0.7, "CALM"},
		{0.5, "UNEASY"},
		{0.3, "RESTLESS"},
		{0.1, "RIOTOUS"},
	}
	for _, tt := range tests {
		if got := moodLabel(tt.stability); got != tt.want {
			t.Errorf("moodLabel(%v) = %q, want %q", tt.stability, got, tt.want)
		}
	}
}

func TestCorruptDisplay(t *testing.T) {
	const text = "ENEMY BOMBER WING SPOTTED OVER THE NORTHERN CORRIDOR"

	if got := corruptDisplay(text, 0.2); got != text {
		t.Errorf("low corruption altered text: %q", got)
	}
	got := corruptDisplay(text, 1.0)
	if len([]rune(got)) != len([]rune(text)) {
		t.Fatalf("corruption changed length: %d != %d", len(got), len(text))
	}
	if got == text {
		t.Error("full corruption left text untouched")
	}
	// Deterministic: same input, same glitches.
	if again := corruptDisplay(text, 1.0); again != got {
		t.Error("corruption is not deterministic")
	}
}

func TestBarClampsAndFills(t *testing.T) {
	if got := bar(-0.5); got != "[..........]" {
		t.Errorf("bar(-0.5) = %q", got)
	}
	if got := bar(2.0); got != "[##########]" {
		t.Errorf("bar(2.0) = %q", got)
	}
	if got := bar(0.5); got != "[#####.....]" {
		t.Errorf("bar(0.5) = %q", got)
	}
}

func TestPips(t *testing.T) {
	if got := pips(1, 3); got != "● ○ ○ " {
		t.Errorf("pips(1,3) = %q", got)
	}
	if got := pips(5, 2); got != "● ● " {
		t.Errorf("pips(5,2) = %q", got)
	}
}
