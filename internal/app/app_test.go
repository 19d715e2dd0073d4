package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/emailextract/internal/extract"
)

func runOnce(t *testing.T, cfg Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(cfg, NewReporter(&out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = a.Run()
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return p
}

func TestRun_AdjacentOnlyScenario(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "contact: a@b.com, again a@b.com\nother: c@d.org\na@b.com only\n")
	out := filepath.Join(dir, "out.txt")

	stdout, err := runOnce(t, Config{InputPath: in, OutputPath: out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := string(b); got != "a@b.com\nc@d.org\na@b.com" {
		t.Fatalf("output = %q", got)
	}
	for _, want := range []string{
		"Input file: " + in,
		"Input file size: 60",
		"Output file: " + out,
		"Extracting email addresses from input file...",
		"3 email addresses extracted",
		"Writing results to file...",
		"Email addresses written to output file '" + out + "' successfully",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_GlobalPolicy(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "a@b.com c@d.org\na@b.com\n")
	out := filepath.Join(dir, "out.txt")
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out, Dedupe: "global"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(b) != "a@b.com\nc@d.org" {
		t.Fatalf("output = %q", b)
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "x@y.io z@w.io x@y.io\nUser@Example.COM\n")
	out := filepath.Join(dir, "out.txt")
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := os.ReadFile(out)
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := os.ReadFile(out)
	if !bytes.Equal(first, second) {
		t.Fatalf("outputs differ: %q vs %q", first, second)
	}
	if string(first) != "x@y.io\nz@w.io\nx@y.io" {
		t.Fatalf("output = %q", first)
	}
}

func TestRun_EmptyInputCreatesEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "")
	out := filepath.Join(dir, "out.txt")
	stdout, err := runOnce(t, Config{InputPath: in, OutputPath: out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty output, got %q", b)
	}
	if !strings.Contains(stdout, "0 email addresses extracted") {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestRun_UppercaseAddressesAbsent(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "User@Example.COM\nok@fine.net\n")
	out := filepath.Join(dir, "out.txt")
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(b) != "ok@fine.net" {
		t.Fatalf("output = %q", b)
	}
}

func TestRun_OutputLinesAreAddresses(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "<p>Alice@example.com, \"q.t\"@host.example and ops@[10.1.2.3]</p>\nroot@localhost\n")
	out := filepath.Join(dir, "out.txt")
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	for _, line := range strings.Split(string(b), "\n") {
		if !extract.IsAddress(line) {
			t.Fatalf("output line %q does not match the grammar", line)
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	_, err := runOnce(t, Config{InputPath: filepath.Join(dir, "missing.txt"), OutputPath: out})
	if extract.KindOf(err) != extract.OpenFailed {
		t.Fatalf("expected OpenFailed, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be created on failure")
	}
}

func TestRun_InvalidUTF8IsScanFailure(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "a@b.com\n\xff\n")
	out := filepath.Join(dir, "out.txt")
	_, err := runOnce(t, Config{InputPath: in, OutputPath: out})
	if extract.KindOf(err) != extract.ScanFailed {
		t.Fatalf("expected ScanFailed, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be written after a scan failure")
	}
}

func TestRun_Latin1Input(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "r\xe9sum\xe9: cv@jobs.example\n")
	out := filepath.Join(dir, "out.txt")
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out, Encoding: "iso-8859-1"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(b) != "cv@jobs.example" {
		t.Fatalf("output = %q", b)
	}
}

func TestRun_HTMLAuto(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "page.html", `<html><body><a href="mailto:team@site.example">Team</a><script>x="no@show.example"</script></body></html>`)
	out := filepath.Join(dir, "out.txt")
	if _, err := runOnce(t, Config{InputPath: in, OutputPath: out, Format: "auto"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	if string(b) != "team@site.example" {
		t.Fatalf("output = %q", b)
	}
}

func TestRun_MetadataFailureStillReportsInputPath(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "a@b.com\n")
	var out bytes.Buffer
	a, err := New(Config{InputPath: in, OutputPath: filepath.Join(dir, "out.txt")}, NewReporter(&out))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.stat = func(string) (int64, error) {
		return 0, &extract.Error{Kind: extract.MetadataFailed, Path: in, Err: fs.ErrPermission}
	}
	err = a.Run()
	if extract.KindOf(err) != extract.MetadataFailed {
		t.Fatalf("expected MetadataFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "Input file: "+in) {
		t.Fatalf("input path must be printed before the metadata read, stdout = %q", out.String())
	}
	if strings.Contains(out.String(), "Input file size:") {
		t.Fatalf("size must not be printed when metadata fails, stdout = %q", out.String())
	}
}

func TestRun_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.txt", "a@b.com\n")
	_, err := runOnce(t, Config{InputPath: in, OutputPath: filepath.Join(dir, "no", "such", "dir", "out.txt")})
	if extract.KindOf(err) != extract.WriteFailed {
		t.Fatalf("expected WriteFailed, got %v", err)
	}
}

func TestNew_RejectsBadSettings(t *testing.T) {
	base := Config{InputPath: "in", OutputPath: "out"}
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Format = "pdf" },
		func(c *Config) { c.Encoding = "not-a-charset" },
		func(c *Config) { c.Dedupe = "sorted" },
		func(c *Config) { c.InputPath = " " },
		func(c *Config) { c.OutputPath = "" },
	} {
		cfg := base
		mutate(&cfg)
		if _, err := New(cfg, nil); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}
