package report

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/pelletier/go-toml/v2"

	"github.com/seitarof/jswift-types/internal/javatype"
	"github.com/seitarof/jswift-types/internal/resolver"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Supported report formats.
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// Reporter renders type plans into a report.
type Reporter interface {
	Report(cfg Config, mode javatype.UnsignedNumericsMode, plans []resolver.TypePlan) error
}

// Config is the minimum config contract required by the reporter.
type Config interface {
	OutputFilename() string
	ReportFormat() string
}

// FileWriter writes a rendered report to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type reporterImpl struct {
	writer FileWriter
	stdout io.Writer
	tmpl   *template.Template
}

type fileWriter struct{}

type document struct {
	UnsignedNumericsMode string          `toml:"unsignedNumericsMode"`
	Unsigned             []unsignedEntry `toml:"unsigned"`
	Types                []typeEntry     `toml:"types"`
}

type unsignedEntry struct {
	Swift string `toml:"swift"`
	Java  string `toml:"java"`
}

type typeEntry struct {
	Java     string `toml:"java"`
	Swift    string `toml:"swift,omitempty"`
	Optional bool   `toml:"optional"`
	Closure  bool   `toml:"closure"`
	Void     bool   `toml:"void"`
	String   bool   `toml:"string"`
	Error    string `toml:"error,omitempty"`
}

// New creates a reporter. Reports without an output filename go to stdout.
func New(w FileWriter, stdout io.Writer) Reporter {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"flags": renderFlags,
	}).ParseFS(templateFS, "templates/*.tmpl"))
	return &reporterImpl{writer: w, stdout: stdout, tmpl: tmpl}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (r *reporterImpl) Report(cfg Config, mode javatype.UnsignedNumericsMode, plans []resolver.TypePlan) error {
	if len(plans) == 0 {
		return fmt.Errorf("no type plans")
	}

	doc, err := buildDocument(mode, plans)
	if err != nil {
		return err
	}

	var data []byte
	switch cfg.ReportFormat() {
	case FormatText, "":
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, "report.txt.tmpl", doc); err != nil {
			return fmt.Errorf("template: %w", err)
		}
		data = buf.Bytes()
	case FormatTOML:
		data, err = toml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("toml: %w", err)
		}
	default:
		return fmt.Errorf("unknown report format %q", cfg.ReportFormat())
	}

	if cfg.OutputFilename() == "" {
		if _, err := r.stdout.Write(data); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}
	if err := r.writer.Write(cfg.OutputFilename(), data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func buildDocument(mode javatype.UnsignedNumericsMode, plans []resolver.TypePlan) (document, error) {
	doc := document{
		UnsignedNumericsMode: mode.String(),
		Types:                make([]typeEntry, 0, len(plans)),
	}
	for _, width := range []int{8, 16, 32, 64} {
		jt, err := mode.JavaTypeForUnsigned(width)
		if err != nil {
			return document{}, err
		}
		doc.Unsigned = append(doc.Unsigned, unsignedEntry{
			Swift: fmt.Sprintf("UInt%d", width),
			Java:  jt.String(),
		})
	}
	for _, p := range plans {
		entry := typeEntry{
			Java:     p.Java.String(),
			Swift:    p.SwiftSpelling(),
			Optional: p.Optional,
			Closure:  p.Closure,
			Void:     p.Void,
			String:   p.String,
		}
		if p.Err != nil {
			entry.Error = p.Err.Error()
		}
		doc.Types = append(doc.Types, entry)
	}
	return doc, nil
}

func renderFlags(e typeEntry) string {
	var flags []string
	if e.Closure {
		flags = append(flags, "closure")
	}
	if e.Void {
		flags = append(flags, "void")
	}
	if e.String {
		flags = append(flags, "string")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}
