package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/csv-to-json-payload/internal/jsonwriter"
	"github.com/ginjaninja78/csv-to-json-payload/internal/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = "1,x,Alice,Go,a@x.com\n2,y,Bob,Rust,b@y.org\n"

const samplePayload = `[
  {
    "name": "Alice",
    "email": "a@x.com",
    "course": "Go",
    "event": "Hack The Winter, 2026",
    "club": "WeCode",
    "date": "2026-01-22/23",
    "student_id": "1"
  },
  {
    "name": "Bob",
    "email": "b@y.org",
    "course": "Rust",
    "event": "Hack The Winter, 2026",
    "club": "WeCode",
    "date": "2026-01-22/23",
    "student_id": "2"
  }
]`

// resetFlags restores every flag in the command tree to its default so that
// one test's arguments do not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	appConfig = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCSV(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "certificates.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRoot_Convert(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, sampleCSV)
	output := filepath.Join(dir, "payload.json")

	stdout, _, err := run(t, "-i", input, "-o", output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "JSON generated: " + output + "\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != samplePayload {
		t.Errorf("payload mismatch:\n%s\nwant:\n%s", data, samplePayload)
	}
}

func TestRoot_ConvertShortRow(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "1,x,Alice,Go,a@x.com\n2,y,Bob\n")
	output := filepath.Join(dir, "payload.json")

	stdout, _, err := run(t, "--input", input, "--output", output)
	if !errors.Is(err, validation.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if stdout != "" {
		t.Errorf("expected no status line, got %q", stdout)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("payload should not be written, stat err = %v", statErr)
	}
}

func TestRoot_MissingInput(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "-i", filepath.Join(dir, "missing.csv"), "-o", filepath.Join(dir, "out.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "7,x,Carol,C,c@z.net\n")
	output := filepath.Join(dir, "custom.json")

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "input_path: " + input + "\n" +
		"output_path: " + output + "\n" +
		"event:\n  event: Spring Sprint\n  club: Gophers\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := run(t, "--config", cfgPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"event": "Spring Sprint"`, `"club": "Gophers"`, `"date": "2026-01-22/23"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("payload missing %s:\n%s", want, data)
		}
	}
}

func TestRoot_MissingExplicitConfig(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "--config", filepath.Join(dir, "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestRoot_SameInputAndOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, sampleCSV)

	_, _, err := run(t, "-i", input, "-o", input)
	if err == nil || !strings.Contains(err.Error(), "must differ") {
		t.Fatalf("expected config error, got %v", err)
	}

	data, _ := os.ReadFile(input)
	if string(data) != sampleCSV {
		t.Error("input file was modified")
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, sampleCSV)

	stdout, stderr, err := run(t, "-v", "-i", input, "-o", filepath.Join(dir, "payload.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stdout, "level=") {
		t.Errorf("log output leaked to stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "payload written") || !strings.Contains(stderr, "run_id=") {
		t.Errorf("expected debug logs on stderr, got %q", stderr)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("all rows valid", func(t *testing.T) {
		input := writeCSV(t, dir, sampleCSV)

		stdout, _, err := run(t, "validate", "-i", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "all 2 row(s) have at least 5 columns") {
			t.Errorf("unexpected report: %q", stdout)
		}
	})

	t.Run("short rows reported", func(t *testing.T) {
		input := writeCSV(t, dir, "1,x\n1,x,Alice,Go,a@x.com\n3\n")

		stdout, _, err := run(t, "validate", "-i", input)
		if err == nil {
			t.Fatal("expected error for short rows")
		}
		if !strings.Contains(err.Error(), "2 of 3 row(s)") {
			t.Errorf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "Validation completed with 2 error(s)") {
			t.Errorf("unexpected report: %q", stdout)
		}
	})
}

func TestRoster(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, sampleCSV)
	roster := filepath.Join(dir, "roster.xlsx")

	stdout, _, err := run(t, "roster", "-i", input, "--roster-output", roster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Roster generated: " + roster + "\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	f, err := excelize.OpenFile(roster)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Recipients")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "Alice" || rows[2][6] != "2" {
		t.Errorf("unexpected roster rows: %v", rows)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Certificate Payload Builder") || !strings.Contains(stdout, Version) {
		t.Errorf("unexpected version output: %q", stdout)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("generated payload passes", func(t *testing.T) {
		input := writeCSV(t, dir, sampleCSV)
		output := filepath.Join(dir, "payload.json")
		if _, _, err := run(t, "-i", input, "-o", output); err != nil {
			t.Fatal(err)
		}

		stdout, _, err := run(t, "check", output)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := output + ": 2 record(s) match the payload schema\n"; stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("hand-edited payload fails", func(t *testing.T) {
		edited := filepath.Join(dir, "edited.json")
		payload := strings.Replace(samplePayload, `"student_id": "2"`, `"student_id": 2`, 1)
		if err := os.WriteFile(edited, []byte(payload), 0644); err != nil {
			t.Fatal(err)
		}

		_, _, err := run(t, "check", edited)
		if !errors.Is(err, jsonwriter.ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
		if !strings.Contains(err.Error(), "/1/student_id") {
			t.Errorf("error does not locate the bad value: %v", err)
		}
	})

	t.Run("missing payload", func(t *testing.T) {
		_, _, err := run(t, "check", filepath.Join(dir, "absent.json"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected fs.ErrNotExist, got %v", err)
		}
		if !strings.Contains(err.Error(), "run payload to generate it") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("print schema", func(t *testing.T) {
		stdout, _, err := run(t, "check", "--schema")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stdout != string(jsonwriter.PayloadSchema()) {
			t.Errorf("stdout = %q, want embedded schema", stdout)
		}
	})
}
