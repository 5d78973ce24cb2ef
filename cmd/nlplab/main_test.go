package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/swsmth4776/nlplab/internal/config"
)

func TestResolveConfigDoesNotMutatePreset(t *testing.T) {
	preset = "quick"
	configFile = ""
	defer func() { preset = "" }()

	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&accuracy, "accuracy", config.DefaultAccuracy, "")
	if err := cmd.Flags().Set("accuracy", "1e-12"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.Accuracy != 1e-12 {
		t.Errorf("accuracy = %g, want flag override 1e-12", cfg.Engine.Accuracy)
	}
	if got := config.GetPreset("quick").Engine.Accuracy; got != 1e-6 {
		t.Errorf("quick preset accuracy = %g after override, want 1e-6", got)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	preset = "nope"
	defer func() { preset = "" }()

	if _, err := resolveConfig(&cobra.Command{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestParsePoint(t *testing.T) {
	x, err := parsePoint("1, 5,5,1", 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 5, 5, 1}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %g, want %g", i, x[i], want[i])
		}
	}

	if _, err := parsePoint("1,2", 4); err == nil {
		t.Error("wrong arity should fail")
	}
	if _, err := parsePoint("1,two,3,4", 4); err == nil {
		t.Error("bad coordinate should fail")
	}
}
