package vmtest

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/viewmodel/pkg/viewmodel"
)

// updateEnv switches RunScript into rewrite mode: observed projections
// replace each step's expect block and the script file is written back.
const updateEnv = "VIEWMODEL_UPDATE_SCRIPTS"

// Script is a YAML-scripted sequence of inputs for one view-model, with
// optional expectations on a projection of the state after each step.
type Script struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted input. Input is kept as a raw YAML node and decoded by
// the caller, so the input type stays opaque to this package; a step without
// an input only checks expectations. Expect, when present, is compared
// against the caller's projection of the state after the input has been
// dispatched. Note is free-form and appears in failure messages.
type Step struct {
	Note   string         `yaml:"note,omitempty"`
	Input  yaml.Node      `yaml:"input,omitempty"`
	Expect map[string]any `yaml:"expect,omitempty"`
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return &s, nil
}

// RunScript loads the script at path and drives vm through it: each step's
// input is decoded by decode and dispatched through Trigger, then project is
// applied to the state and compared against the step's expect block with
// go-cmp. Projections should stick to the types YAML produces (string, bool,
// int, float64, nested maps and slices) so the comparison is faithful.
//
// With VIEWMODEL_UPDATE_SCRIPTS set, observed projections are written back to
// the script file instead of being compared.
func RunScript[S, I any](t *testing.T, vm viewmodel.ViewModel[S, I], path string, decode func(*yaml.Node) (I, error), project func(S) map[string]any) {
	t.Helper()

	script, err := LoadScript(path)
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}

	update := os.Getenv(updateEnv) != ""
	changed := false

	for i := range script.Steps {
		step := &script.Steps[i]

		if !step.Input.IsZero() {
			input, err := decode(&step.Input)
			if err != nil {
				t.Fatalf("step %d%s: failed to decode input: %v", i, stepNote(step), err)
			}
			vm.Trigger(input)
		}

		if project == nil {
			continue
		}
		got := project(vm.State())

		if update {
			if !cmp.Equal(step.Expect, got) {
				step.Expect = got
				changed = true
			}
			continue
		}
		if step.Expect == nil {
			continue
		}
		if diff := cmp.Diff(step.Expect, got); diff != "" {
			t.Errorf("step %d%s: projection mismatch (-want +got):\n%s", i, stepNote(step), diff)
		}
	}

	if update && changed {
		if err := writeScript(path, script); err != nil {
			t.Fatalf("RunScript: %v", err)
		}
		t.Logf("updated %s", path)
	}
}

func stepNote(step *Step) string {
	if step.Note == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", step.Note)
}

func writeScript(path string, script *Script) error {
	data, err := yaml.Marshal(script)
	if err != nil {
		return fmt.Errorf("failed to encode script: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}
