package main

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"pathrecall/pkg/engine/input"
	"pathrecall/pkg/game/config"
)

func TestWriteControls(t *testing.T) {
	var sb strings.Builder
	if err := writeControls(&sb); err != nil {
		t.Fatal(err)
	}
	out := color.ClearCode(sb.String())
	for _, act := range controlOrder {
		if !strings.Contains(out, input.ActionName(act)) {
			t.Errorf("controls listing is missing %s", input.ActionName(act))
		}
	}
	if !strings.Contains(out, "arrow_up") {
		t.Error("controls listing is missing arrow_up")
	}
}

func TestApplyBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Bindings = []string{"screenshot=o"}
	if err := applyBindings(cfg); err != nil {
		t.Fatal(err)
	}
	got := input.MapToIntent(input.DebouncedInput{Code: "o"})
	if got.Action != input.ActionScreenshot {
		t.Errorf("o maps to %v, want screenshot", got.Action)
	}

	cfg.Bindings = []string{"up=escape"}
	if err := applyBindings(cfg); err == nil {
		t.Error("binding a reserved key succeeded")
	}
}
