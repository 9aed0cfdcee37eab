package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestReverseCommand(t *testing.T) {
	out, _, err := execute(t, "GATTACA\n", "reverse", "--variant", "builder")
	if err != nil {
		t.Fatalf("reverse error: %v", err)
	}
	if out != "acattag\n" {
		t.Errorf("output = %q, want %q", out, "acattag\n")
	}
}

func TestSpliceCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dna.txt")
	if err := os.WriteFile(path, []byte(">sample\naagaattcgaattcc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "splice", "gaattc", "xy", path, "--print")
	if err != nil {
		t.Fatalf("splice error: %v", err)
	}
	for _, want := range []string{"variant\tlink", "size\t7", "appends\t4", "aaxyxyc\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSpliceCommandArgs(t *testing.T) {
	if _, _, err := execute(t, "", "splice", "gaattc"); err == nil {
		t.Error("expected error for missing splicee")
	}
}

func TestBenchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dna.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("ttgaattcaa", 10)), 0o644); err != nil {
		t.Fatal(err)
	}

	// A buffer is not a terminal, so the default format is JSON.
	out, _, err := execute(t, "", "bench", path, "--trials", "1", "--variants", "link,string")
	if err != nil {
		t.Fatalf("bench error: %v", err)
	}
	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON:\n%s", out)
	}
	if got := gjson.Get(out, "trials").Int(); got != 1 {
		t.Errorf("trials = %d, want 1", got)
	}
	if got := gjson.Get(out, `results.#(variant=="builder")#.#`).Int(); got != 0 {
		t.Errorf("builder results = %d, want 0", got)
	}
	if got := gjson.Get(out, `results.#(variant=="string")#.#`).Int(); got == 0 {
		t.Error("expected string results")
	}
}

func TestBenchCommandFormatText(t *testing.T) {
	out, _, err := execute(t, "acgtgaattcacgt", "bench", "-", "-f", "text", "-n", "1", "--variants", "link")
	if err != nil {
		t.Fatalf("bench error: %v", err)
	}
	if !strings.Contains(out, "splice") || !strings.Contains(out, "link") {
		t.Errorf("unexpected text report:\n%s", out)
	}
}

func TestScriptCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.lua")
	if err := os.WriteFile(path, []byte(`print(strand.new("ac"):append("gt"):size())`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "script", path)
	if err != nil {
		t.Fatalf("script error: %v", err)
	}
	if out != "4\n" {
		t.Errorf("output = %q, want %q", out, "4\n")
	}
}

func TestScriptCommandOpLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.lua")
	if err := os.WriteFile(path, []byte(`local s = strand.new("a") for i = 1, 10 do s:append("c") end`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "script", path, "--op-limit", "5")
	if err == nil || !strings.Contains(err.Error(), "operation limit") {
		t.Errorf("script error = %v, want operation limit", err)
	}
}

func TestUnknownVariant(t *testing.T) {
	_, _, err := execute(t, "acgt", "reverse", "--variant", "rope")
	if err == nil || !strings.Contains(err.Error(), "strand.variant") {
		t.Errorf("error = %v, want strand.variant validation error", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "strand dev") {
		t.Errorf("version output = %q", out)
	}
}
