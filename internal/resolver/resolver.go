package resolver

import (
	"github.com/seitarof/jswift-types/internal/javatype"
)

// Rule tries to map one qualified Java class name to a Swift type name.
type Rule interface {
	Name() string
	Try(className string) (string, bool)
}

type resolverImpl struct {
	rules []Rule
}

// New builds a class-name resolver from a rule chain. Rules are tried in
// order; when none matches the class is unresolved.
func New(rules ...Rule) javatype.ClassNameResolver {
	return &resolverImpl{rules: rules}
}

func (r *resolverImpl) ResolveClassName(className string) (string, error) {
	for _, rule := range r.rules {
		if name, ok := rule.Try(className); ok {
			return name, nil
		}
	}
	return "", &javatype.UnresolvedClassNameError{ClassName: className}
}
