package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g5becks/scriptdoc/internal/libdoc"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), append([]string{"scriptdoc"}, args...))
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRunEmitsModelJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeInput(t, dir, "math.py", `# $function: add
# $doc: Adds two numbers.
# $arg a: first addend
# $arg b: second addend
# $return: the sum
`)

	stdout, _, err := runCommand(t, input)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var got, want any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	_ = json.Unmarshal([]byte(`{"functions": [{"name": "add", "doc": ["Adds two numbers."], "return": ["the sum"],
		"args": [{"name": "a", "doc": ["first addend"]}, {"name": "b", "doc": ["second addend"]}]}]}`), &want)

	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(want)
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("output = %s, want %s", gotJSON, wantJSON)
	}

	if !strings.Contains(stdout, "\n    \"functions\"") {
		t.Fatalf("output is not indented with 4 spaces:\n%s", stdout)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	a := writeInput(t, dir, "a.js", "// $function: foo\n// $function: bar\n// $group: math\n")
	b := writeInput(t, dir, "b.js", "// $function: baz\n// $group: alpha\n// $doc: z\n")

	first, _, err := runCommand(t, a, b)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	second, _, err := runCommand(t, a, b)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	if first != second {
		t.Fatalf("outputs differ:\n%s\n%s", first, second)
	}

	var model libdoc.Model
	if err := json.Unmarshal([]byte(first), &model); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	var names []string
	for _, fn := range model.Functions {
		names = append(names, fn.Name)
	}
	if strings.Join(names, ",") != "foo,baz,bar" {
		t.Fatalf("order = %v, want foo,baz,bar", names)
	}
}

func TestRunDuplicateAcrossFilesFails(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	a := writeInput(t, dir, "a.js", "// $function: f\n")
	b := writeInput(t, dir, "b.py", "\n# $function: f\n")

	stdout, _, err := runCommand(t, a, b)
	if err == nil {
		t.Fatalf("run error = nil, want duplicate function error")
	}

	var libErr *libdoc.Error
	if !errors.As(err, &libErr) {
		t.Fatalf("error = %T %v, want wrapped *libdoc.Error", err, err)
	}
	if libErr.Kind != libdoc.KindDuplicateFunction || libErr.File != b || libErr.Line != 2 {
		t.Fatalf("error = %+v", libErr)
	}

	if !strings.Contains(err.Error(), b+`:2: function "f" redefined`) {
		t.Fatalf("error message = %q", err.Error())
	}

	if stdout != "" {
		t.Fatalf("no output expected on error, got %q", stdout)
	}
}

func TestRunRequiresInputs(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCommand(t)
	if err == nil || !strings.Contains(err.Error(), "expected at least 1 input file") {
		t.Fatalf("run error = %v, want missing input error", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := runCommand(t, filepath.Join(dir, "missing.js"))
	if err == nil || !strings.Contains(err.Error(), "missing.js") {
		t.Fatalf("run error = %v, want missing file error", err)
	}
}

func TestRunStrict(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeInput(t, dir, "lib.js", "// $function: f\n// $doc: no group\n")

	stdout, stderr, err := runCommand(t, "--strict", input)
	if err == nil || !strings.Contains(err.Error(), "1 documentation issue(s)") {
		t.Fatalf("run error = %v, want validation failure", err)
	}
	if !strings.Contains(stderr, `function "f" missing group`) {
		t.Fatalf("stderr = %q, want issue listing", stderr)
	}
	if stdout != "" {
		t.Fatalf("no output expected on strict failure, got %q", stdout)
	}
}

func TestRunGlobAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeInput(t, dir, "lib/b.js", "// $function: b\n")
	writeInput(t, dir, "lib/a.js", "// $function: a\n")
	writeInput(t, dir, "lib/vendor/x.js", "// $function: a\n")

	stdout, stderr, err := runCommand(t,
		"--exclude", "**/vendor/**",
		"--output", "out/library.json",
		"--verbose",
		"lib/**/*.js",
	)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty when --output is set", stdout)
	}
	if !strings.Contains(stderr, "2 function(s) from 2 input(s)") {
		t.Fatalf("stderr = %q, want summary", stderr)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "library.json"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var model libdoc.Model
	if err := json.Unmarshal(data, &model); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(model.Functions) != 2 || model.Functions[0].Name != "a" {
		t.Fatalf("model = %+v", model)
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeInput(t, dir, "scriptdoc.toml", "format = \"markdown\"\n")
	input := writeInput(t, dir, "lib.js", "// $function: f\n// $group: Core\n// $doc: does f\n")

	stdout, _, err := runCommand(t, input)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(stdout, "## Core") || !strings.Contains(stdout, "### f") {
		t.Fatalf("stdout = %q, want markdown", stdout)
	}

	stdout, _, err = runCommand(t, "--format", "json", input)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.HasPrefix(stdout, "{") {
		t.Fatalf("stdout = %q, want flag to override config format", stdout)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := writeInput(t, dir, "lib.js", "// $function: f\n")

	_, _, err := runCommand(t, "--format", "pdf", input)
	if err == nil || !strings.Contains(err.Error(), `unknown output format "pdf"`) {
		t.Fatalf("run error = %v, want unknown format", err)
	}
}
