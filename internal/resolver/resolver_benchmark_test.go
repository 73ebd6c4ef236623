package resolver

import (
	"testing"

	"github.com/seitarof/jswift-types/internal/config"
	"github.com/seitarof/jswift-types/internal/javatype"
)

func BenchmarkPlannerPlanAll_MixedTypes(b *testing.B) {
	cfg := &config.Configuration{
		Classes:  map[string]string{"com.example.Widget": "Widget"},
		Packages: map[string]string{"com.example.shapes": "Shapes"},
	}
	cached, err := NewCached(New(DefaultRules(cfg)...), config.DefaultCacheSize)
	if err != nil {
		b.Fatal(err)
	}
	planner := NewPlanner(cached, true)
	types := []javatype.Type{
		javatype.Long(),
		javatype.ArrayOf(javatype.ArrayOf(javatype.Char())),
		javatype.JavaLangString,
		javatype.ArrayOf(javatype.Class("com.example", "Widget")),
		javatype.Class("com.example.shapes", "Outer$Inner"),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plans := planner.PlanAll(types)
		if len(plans) != len(types) {
			b.Fatalf("unexpected plan count: got %d want %d", len(plans), len(types))
		}
	}
}
