package main

import (
	"testing"

	"github.com/vovakirdan/tui-snowboard/internal/core"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript("wait:1, jump:0.5,Left+SpinLeft:0.25", 60)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps, expected 3", len(steps))
	}

	if steps[0].ticks != 60 || len(steps[0].actions) != 0 {
		t.Errorf("wait step = %+v", steps[0])
	}
	if steps[1].ticks != 30 || len(steps[1].actions) != 1 || steps[1].actions[0] != core.ActionJump {
		t.Errorf("jump step = %+v", steps[1])
	}
	if steps[2].ticks != 15 || len(steps[2].actions) != 2 {
		t.Errorf("combo step = %+v", steps[2])
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"jump",
		"jump:abc",
		"jump:-1",
		"pause:1",
		"fly:0.5",
	}
	for _, script := range tests {
		if _, err := parseScript(script, 60); err == nil {
			t.Errorf("parseScript(%q) should fail", script)
		}
	}
}

func TestFrameAt(t *testing.T) {
	steps, err := parseScript("wait:0.5,jump:0.5", 10)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		tick int
		jump bool
	}{
		{0, false},
		{4, false},
		{5, true},
		{9, true},
		{10, false},
		{100, false},
	}
	for _, tc := range tests {
		if got := frameAt(steps, tc.tick).Has(core.ActionJump); got != tc.jump {
			t.Errorf("tick %d: jump = %v, expected %v", tc.tick, got, tc.jump)
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	steps, err := parseScript("", 60)
	if err != nil || len(steps) != 0 {
		t.Errorf("empty script = %v, %v", steps, err)
	}
}
