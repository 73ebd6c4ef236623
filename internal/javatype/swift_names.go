package javatype

// ClassNameResolver turns a canonical Java class name into the corresponding
// Swift type name. Implementations return an error, typically wrapping
// ErrUnresolvedClassName, when there is no such Swift type.
type ClassNameResolver interface {
	ResolveClassName(qualifiedName string) (string, error)
}

// ClassNameResolverFunc adapts a function to ClassNameResolver.
type ClassNameResolverFunc func(qualifiedName string) (string, error)

func (f ClassNameResolverFunc) ResolveClassName(qualifiedName string) (string, error) {
	return f(qualifiedName)
}

// IsSwiftOptional reports whether the Swift representation of t must be an
// optional. Every class is optional except java.lang.String when strings are
// treated as Swift value types.
func (t Type) IsSwiftOptional(stringIsValueType bool) bool {
	switch t.Kind {
	case KindBoolean, KindByte, KindChar, KindShort, KindInt, KindLong, KindFloat, KindDouble, KindVoid,
		KindArray:
		return false
	case KindClass:
		if t.isClass("java.lang", "String") {
			return !stringIsValueType
		}
		return true
	}
	panic("javatype: unknown kind " + t.Kind.String())
}

// IsSwiftClosure reports whether t is bridged as a Swift closure.
// Only java.lang.Runnable is; there is no structural functional-interface check.
func (t Type) IsSwiftClosure() bool {
	switch t.Kind {
	case KindBoolean, KindByte, KindChar, KindShort, KindInt, KindLong, KindFloat, KindDouble, KindVoid,
		KindArray:
		return false
	case KindClass:
		return t.isClass("java.lang", "Runnable")
	}
	panic("javatype: unknown kind " + t.Kind.String())
}

func (t Type) IsVoid() bool {
	return t.Kind == KindVoid
}

// IsString reports whether t is java.lang.String, regardless of value-type mode.
func (t Type) IsString() bool {
	switch t.Kind {
	case KindBoolean, KindByte, KindChar, KindShort, KindInt, KindLong, KindFloat, KindDouble, KindVoid,
		KindArray:
		return false
	case KindClass:
		return t.isClass("java.lang", "String")
	}
	panic("javatype: unknown kind " + t.Kind.String())
}

// SwiftTypeName produces the Swift type name for t. Class names are delegated
// to r and its error is returned unchanged; r is never called for primitives.
func (t Type) SwiftTypeName(r ClassNameResolver) (string, error) {
	switch t.Kind {
	case KindBoolean:
		return "Bool", nil
	case KindByte:
		return "Int8", nil
	case KindChar:
		// Java char is unsigned.
		return "UInt16", nil
	case KindShort:
		return "Int16", nil
	case KindInt:
		return "Int32", nil
	case KindLong:
		return "Int64", nil
	case KindFloat:
		return "Float", nil
	case KindDouble:
		return "Double", nil
	case KindVoid:
		return "Void", nil
	case KindArray:
		elemName, err := t.Elem.SwiftTypeName(r)
		if err != nil {
			return "", err
		}
		// Array elements always treat String as a value type.
		if t.Elem.IsSwiftOptional(true) {
			return "[" + elemName + "?]", nil
		}
		return "[" + elemName + "]", nil
	case KindClass:
		name, err := r.ResolveClassName(t.String())
		if err != nil {
			return "", err
		}
		return name, nil
	}
	panic("javatype: unknown kind " + t.Kind.String())
}
