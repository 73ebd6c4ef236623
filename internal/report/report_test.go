package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/seitarof/jswift-types/internal/javatype"
	"github.com/seitarof/jswift-types/internal/resolver"
)

type testConfig struct {
	filename string
	format   string
}

func (c testConfig) OutputFilename() string { return c.filename }
func (c testConfig) ReportFormat() string   { return c.format }

func samplePlans() []resolver.TypePlan {
	r := resolver.New(resolver.DefaultRules(nil)...)
	return []resolver.TypePlan{
		resolver.Plan(javatype.ArrayOf(javatype.ArrayOf(javatype.Int())), r, true),
		resolver.Plan(javatype.JavaLangString, r, false),
		resolver.Plan(javatype.Void(), r, true),
		resolver.Plan(javatype.Class("com.example", "Widget"), r, true),
	}
}

func TestReport_TextToStdout(t *testing.T) {
	var stdout bytes.Buffer
	rep := New(NewFileWriter(), &stdout)
	if err := rep.Report(testConfig{format: FormatText}, javatype.IgnoreSign, samplePlans()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	got := stdout.String()
	checks := []string{
		"unsigned numerics: ignoreSign\n",
		"  UInt8 -> byte\n",
		"  UInt64 -> long\n",
		"int[][] -> [[Int32]]\n",
		"java.lang.String -> String? [string]\n",
		"void -> Void [void]\n",
		"com.example.Widget -> unresolved (",
	}
	for _, check := range checks {
		if !strings.Contains(got, check) {
			t.Fatalf("report does not contain %q\n%s", check, got)
		}
	}
}

func TestReport_TOMLToFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "report.toml")
	rep := New(NewFileWriter(), &bytes.Buffer{})
	if err := rep.Report(testConfig{filename: filename, format: FormatTOML}, javatype.WrapUnsignedGuava, samplePlans()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var doc document
	if err := toml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, b)
	}
	if doc.UnsignedNumericsMode != "wrapUnsignedGuava" {
		t.Fatalf("mode = %q", doc.UnsignedNumericsMode)
	}
	if len(doc.Unsigned) != 4 || doc.Unsigned[3].Java != "com.google.common.primitives.UnsignedLong" {
		t.Fatalf("unexpected unsigned table: %#v", doc.Unsigned)
	}
	if len(doc.Types) != 4 {
		t.Fatalf("expected 4 types, got %d", len(doc.Types))
	}
	if doc.Types[1].Swift != "String?" || !doc.Types[1].Optional || !doc.Types[1].String {
		t.Fatalf("unexpected string entry: %#v", doc.Types[1])
	}
	if doc.Types[3].Swift != "" || doc.Types[3].Error == "" {
		t.Fatalf("unresolved entry should carry an error and no name: %#v", doc.Types[3])
	}
}

func TestReport_Errors(t *testing.T) {
	rep := New(NewFileWriter(), &bytes.Buffer{})
	if err := rep.Report(testConfig{}, javatype.IgnoreSign, nil); err == nil {
		t.Fatal("expected error for empty plans")
	}
	if err := rep.Report(testConfig{format: "yaml"}, javatype.IgnoreSign, samplePlans()); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := rep.Report(testConfig{}, javatype.UnsignedNumericsMode(9), samplePlans()); err == nil {
		t.Fatal("expected error for unknown unsigned mode")
	}
}

type failingWriter struct{}

func (failingWriter) Write(string, []byte) error { return errors.New("disk full") }

func TestReport_WriteError(t *testing.T) {
	rep := New(failingWriter{}, &bytes.Buffer{})
	err := rep.Report(testConfig{filename: "out.txt"}, javatype.IgnoreSign, samplePlans())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}
