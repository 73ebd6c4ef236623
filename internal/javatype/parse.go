package javatype

import (
	"fmt"
	"strings"
	"unicode"
)

var keywordKinds = map[string]Kind{
	"boolean": KindBoolean,
	"byte":    KindByte,
	"char":    KindChar,
	"short":   KindShort,
	"int":     KindInt,
	"long":    KindLong,
	"float":   KindFloat,
	"double":  KindDouble,
	"void":    KindVoid,
}

// Parse reads the canonical spelling produced by Type.String.
// A bare identifier without a package is read as a class only when it
// starts with an upper-case letter.
func Parse(spelling string) (Type, error) {
	s := strings.TrimSpace(spelling)
	if s == "" {
		return Type{}, fmt.Errorf("empty java type")
	}

	depth := 0
	for strings.HasSuffix(s, "]") {
		base, ok := strings.CutSuffix(s, "[]")
		if !ok {
			return Type{}, fmt.Errorf("malformed array brackets in %q", spelling)
		}
		s = strings.TrimSpace(base)
		depth++
	}

	t, err := parseElement(s)
	if err != nil {
		return Type{}, fmt.Errorf("parse %q: %w", spelling, err)
	}
	if depth > 0 && t.Kind == KindVoid {
		return Type{}, fmt.Errorf("parse %q: void cannot be an array element", spelling)
	}
	for i := 0; i < depth; i++ {
		t = ArrayOf(t)
	}
	return t, nil
}

func parseElement(s string) (Type, error) {
	if s == "" {
		return Type{}, fmt.Errorf("missing element type")
	}
	if kind, ok := keywordKinds[s]; ok {
		return Type{Kind: kind}, nil
	}

	segments := strings.Split(s, ".")
	for _, seg := range segments {
		if !isJavaIdentifier(seg) {
			return Type{}, fmt.Errorf("invalid identifier %q", seg)
		}
	}

	name := segments[len(segments)-1]
	pkg := strings.Join(segments[:len(segments)-1], ".")
	if pkg == "" && !unicode.IsUpper([]rune(name)[0]) {
		return Type{}, fmt.Errorf("unknown primitive %q", name)
	}
	return Class(pkg, name), nil
}

func isJavaIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
