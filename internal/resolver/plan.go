package resolver

import (
	"github.com/seitarof/jswift-types/internal/javatype"
)

// TypePlan is the bridging decision for one Java type.
type TypePlan struct {
	Java      javatype.Type
	SwiftName string
	Optional  bool
	Closure   bool
	Void      bool
	String    bool
	// Err is set when the Swift name could not be resolved; SwiftName is empty then.
	Err error
}

// SwiftSpelling returns the Swift name with a trailing "?" when the
// representation is optional.
func (p TypePlan) SwiftSpelling() string {
	if p.Err != nil {
		return ""
	}
	if p.Optional {
		return p.SwiftName + "?"
	}
	return p.SwiftName
}

// Plan computes every classification for t in one pass.
func Plan(t javatype.Type, r javatype.ClassNameResolver, stringIsValueType bool) TypePlan {
	name, err := t.SwiftTypeName(r)
	return TypePlan{
		Java:      t,
		SwiftName: name,
		Optional:  t.IsSwiftOptional(stringIsValueType),
		Closure:   t.IsSwiftClosure(),
		Void:      t.IsVoid(),
		String:    t.IsString(),
		Err:       err,
	}
}

// Planner plans batches of types against one resolver.
type Planner interface {
	PlanAll(types []javatype.Type) []TypePlan
}

type plannerImpl struct {
	resolver          javatype.ClassNameResolver
	stringIsValueType bool
}

// NewPlanner returns a planner bound to r and the string value-type mode.
func NewPlanner(r javatype.ClassNameResolver, stringIsValueType bool) Planner {
	return &plannerImpl{resolver: r, stringIsValueType: stringIsValueType}
}

func (p *plannerImpl) PlanAll(types []javatype.Type) []TypePlan {
	plans := make([]TypePlan, 0, len(types))
	for _, t := range types {
		plans = append(plans, Plan(t, p.resolver, p.stringIsValueType))
	}
	return plans
}
