package javatype

import "fmt"

// UnsignedNumericsMode determines how Swift's unsigned integer types are
// represented on the Java side.
//
// With IgnoreSign the values are imported as the Java type of the same bit
// width, so large magnitudes read as negative numbers. With WrapUnsignedGuava
// they are imported as Guava's UnsignedInteger/UnsignedLong wrappers, which
// costs an allocation and an indirection; the generated project must depend on
// Guava. UInt16 is always imported as char, which is unsigned in Java.
type UnsignedNumericsMode int

const (
	IgnoreSign UnsignedNumericsMode = iota
	WrapUnsignedGuava
)

func (m UnsignedNumericsMode) String() string {
	switch m {
	case IgnoreSign:
		return "ignoreSign"
	case WrapUnsignedGuava:
		return "wrapUnsignedGuava"
	default:
		return fmt.Sprintf("UnsignedNumericsMode(%d)", int(m))
	}
}

// JavaTypeForUnsigned returns the Java type that a Swift unsigned integer of
// the given bit width (8, 16, 32 or 64) is imported as under m.
func (m UnsignedNumericsMode) JavaTypeForUnsigned(bitWidth int) (Type, error) {
	if bitWidth == 16 {
		return Char(), nil
	}
	switch m {
	case IgnoreSign:
		switch bitWidth {
		case 8:
			return Byte(), nil
		case 32:
			return Int(), nil
		case 64:
			return Long(), nil
		}
	case WrapUnsignedGuava:
		switch bitWidth {
		case 8, 32:
			return Class("com.google.common.primitives", "UnsignedInteger"), nil
		case 64:
			return Class("com.google.common.primitives", "UnsignedLong"), nil
		}
	default:
		return Type{}, fmt.Errorf("unknown unsigned numerics mode %d", int(m))
	}
	return Type{}, fmt.Errorf("unsupported unsigned bit width %d", bitWidth)
}
