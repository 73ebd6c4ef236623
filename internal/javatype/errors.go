package javatype

import (
	"errors"
	"fmt"
)

// ErrUnresolvedClassName is the failure kind for a class with no Swift equivalent.
var ErrUnresolvedClassName = errors.New("unresolved class name")

// UnresolvedClassNameError reports the class a resolver could not map.
type UnresolvedClassNameError struct {
	ClassName string
}

func (e *UnresolvedClassNameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnresolvedClassName, e.ClassName)
}

func (e *UnresolvedClassNameError) Is(target error) bool {
	return target == ErrUnresolvedClassName
}
