package javatype

import "fmt"

// Kind is the active case of a Java type.
type Kind int

const (
	KindBoolean Kind = iota
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindVoid
	KindArray
	KindClass
)

var kindKeywords = [...]string{
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindVoid:    "void",
	KindArray:   "array",
	KindClass:   "class",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindKeywords) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindKeywords[k]
}

// IsPrimitive reports whether k is one of the eight primitive kinds.
func (k Kind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindDouble
}

// Type describes one Java type. Elem is set only for KindArray, Package and
// Name only for KindClass. Values are immutable once built.
type Type struct {
	Kind    Kind
	Elem    *Type
	Package string
	Name    string
}

func Boolean() Type { return Type{Kind: KindBoolean} }
func Byte() Type    { return Type{Kind: KindByte} }
func Char() Type    { return Type{Kind: KindChar} }
func Short() Type   { return Type{Kind: KindShort} }
func Int() Type     { return Type{Kind: KindInt} }
func Long() Type    { return Type{Kind: KindLong} }
func Float() Type   { return Type{Kind: KindFloat} }
func Double() Type  { return Type{Kind: KindDouble} }
func Void() Type    { return Type{Kind: KindVoid} }

// ArrayOf returns the array type with the given element type.
func ArrayOf(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

// Class returns a named reference type. pkg may be empty for the default package.
func Class(pkg, name string) Type {
	return Type{Kind: KindClass, Package: pkg, Name: name}
}

// Well-known classes with special treatment on the Swift side.
var (
	JavaLangString   = Class("java.lang", "String")
	JavaLangRunnable = Class("java.lang", "Runnable")
)

// Equal reports whether t and o describe the same Java type.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindArray:
		return t.Elem.Equal(*o.Elem)
	case KindClass:
		return t.Package == o.Package && t.Name == o.Name
	default:
		return true
	}
}

// String returns the canonical Java spelling, e.g. "int[]" or "java.lang.String".
// This is the name handed to a ClassNameResolver.
func (t Type) String() string {
	switch t.Kind {
	case KindArray:
		return t.Elem.String() + "[]"
	case KindClass:
		if t.Package == "" {
			return t.Name
		}
		return t.Package + "." + t.Name
	default:
		return t.Kind.String()
	}
}

func (t Type) isClass(pkg, name string) bool {
	return t.Kind == KindClass && t.Package == pkg && t.Name == name
}
