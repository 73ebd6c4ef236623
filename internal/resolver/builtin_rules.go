package resolver

import (
	"strings"

	"github.com/seitarof/jswift-types/internal/config"
)

// DefaultRules returns built-in rules in priority order for cfg.
func DefaultRules(cfg *config.Configuration) []Rule {
	var classes, packages map[string]string
	if cfg != nil {
		classes = cfg.Classes
		packages = cfg.Packages
	}
	return []Rule{
		&MappingRule{Classes: classes},
		&WellKnownRule{},
		&PackageRule{Packages: packages},
	}
}

// MappingRule: explicitly configured class -> Swift type name.
type MappingRule struct {
	Classes map[string]string
}

func (r *MappingRule) Name() string { return "mapping" }

func (r *MappingRule) Try(className string) (string, bool) {
	name, ok := r.Classes[className]
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

var wellKnownClasses = map[string]string{
	"java.lang.String": "String",
	"java.lang.Object": "JavaObject",
}

// WellKnownRule maps java.lang classes that the runtime library bridges itself.
type WellKnownRule struct{}

func (r *WellKnownRule) Name() string { return "well-known" }

func (r *WellKnownRule) Try(className string) (string, bool) {
	name, ok := wellKnownClasses[className]
	return name, ok
}

// PackageRule: classes declared directly in a configured package resolve to
// their simple name, qualified by the package's Swift module when it is set.
// Nested classes ("Outer$Inner") become Swift nested types ("Outer.Inner").
type PackageRule struct {
	Packages map[string]string
}

func (r *PackageRule) Name() string { return "package" }

func (r *PackageRule) Try(className string) (string, bool) {
	idx := strings.LastIndex(className, ".")
	if idx <= 0 || idx == len(className)-1 {
		return "", false
	}
	module, ok := r.Packages[className[:idx]]
	if !ok {
		return "", false
	}
	name, ok := swiftNestedName(className[idx+1:])
	if !ok {
		return "", false
	}
	if module == "" {
		return name, true
	}
	return module + "." + name, true
}

func swiftNestedName(simpleName string) (string, bool) {
	parts := strings.Split(simpleName, "$")
	for _, p := range parts {
		// Anonymous and local classes ("Outer$1") have no Swift spelling.
		if p == "" || (p[0] >= '0' && p[0] <= '9') {
			return "", false
		}
	}
	return strings.Join(parts, "."), true
}
