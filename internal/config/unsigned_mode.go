package config

import (
	"fmt"

	"github.com/seitarof/jswift-types/internal/javatype"
)

// UnsignedNumbersMode is the configuration selector for unsigned integers.
type UnsignedNumbersMode int

const (
	Annotate UnsignedNumbersMode = iota
	WrapGuava
)

func (m UnsignedNumbersMode) String() string {
	switch m {
	case Annotate:
		return "annotate"
	case WrapGuava:
		return "wrapGuava"
	default:
		return fmt.Sprintf("UnsignedNumbersMode(%d)", int(m))
	}
}

func (m UnsignedNumbersMode) MarshalText() ([]byte, error) {
	switch m {
	case Annotate, WrapGuava:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("unknown unsigned numbers mode %d", int(m))
	}
}

func (m *UnsignedNumbersMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "annotate":
		*m = Annotate
	case "wrapGuava":
		*m = WrapGuava
	default:
		return fmt.Errorf("unknown unsigned numbers mode %q (want annotate or wrapGuava)", text)
	}
	return nil
}

// ProjectUnsignedNumericsMode maps the selector onto the conversion policy.
func ProjectUnsignedNumericsMode(m UnsignedNumbersMode) javatype.UnsignedNumericsMode {
	switch m {
	case Annotate:
		return javatype.IgnoreSign
	case WrapGuava:
		return javatype.WrapUnsignedGuava
	}
	panic("config: unknown unsigned numbers mode " + m.String())
}
