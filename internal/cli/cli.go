package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/seitarof/jswift-types/internal/report"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var stringIsValueType bool

	fs := pflag.NewFlagSet("jswift-types", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ConfigPath, "config", "c", "", "project configuration file (TOML)")
	fs.BoolVar(&stringIsValueType, "string-value-type", false, "treat java.lang.String as a Swift value type")
	fs.StringVarP(&cfg.Format, "format", "f", report.FormatText, "report format: text or toml")
	fs.StringVarP(&cfg.Filename, "output", "o", "", "report file name (default stdout)")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if fs.Changed("string-value-type") {
		cfg.StringIsValueType = &stringIsValueType
	}
	switch cfg.Format {
	case report.FormatText, report.FormatTOML:
	default:
		return nil, fmt.Errorf("--format must be %q or %q, got %q", report.FormatText, report.FormatTOML, cfg.Format)
	}

	cfg.Types = splitTypeArgs(fs.Args())
	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("at least one java type is required")
	}
	return cfg, nil
}

// splitTypeArgs accepts both separate arguments and comma-separated lists.
func splitTypeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		for _, p := range strings.Split(arg, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
