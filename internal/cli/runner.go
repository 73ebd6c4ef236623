package cli

import (
	"fmt"
	"log"

	"github.com/seitarof/jswift-types/internal/config"
	"github.com/seitarof/jswift-types/internal/javatype"
	"github.com/seitarof/jswift-types/internal/report"
	"github.com/seitarof/jswift-types/internal/resolver"
)

// Runner orchestrates config/resolver/report layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader   config.Loader
	reporter report.Reporter
}

// NewRunner creates a default runner implementation.
func NewRunner(l config.Loader, rep report.Reporter) Runner {
	return &runnerImpl{loader: l, reporter: rep}
}

// Run plans every requested type and writes one report. Unresolved classes
// are reported, not treated as failures.
func (r *runnerImpl) Run(cfg *Config) error {
	project := &config.Configuration{}
	if cfg.ConfigPath != "" {
		loaded, err := r.loader.Load(cfg.ConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		project = loaded
	}

	stringIsValueType := project.StringIsValueType
	if cfg.StringIsValueType != nil {
		stringIsValueType = *cfg.StringIsValueType
	}

	types := make([]javatype.Type, 0, len(cfg.Types))
	for _, spelling := range cfg.Types {
		t, err := javatype.Parse(spelling)
		if err != nil {
			return fmt.Errorf("java type: %w", err)
		}
		types = append(types, t)
	}

	classResolver, err := resolver.NewCached(
		resolver.New(resolver.DefaultRules(project)...),
		project.EffectiveCacheSize(),
	)
	if err != nil {
		return err
	}

	plans := resolver.NewPlanner(classResolver, stringIsValueType).PlanAll(types)
	logUnresolved(plans)
	return r.reporter.Report(cfg, project.EffectiveUnsignedNumericsMode(), plans)
}

func logUnresolved(plans []resolver.TypePlan) {
	for _, plan := range plans {
		if plan.Err == nil {
			continue
		}
		log.Printf("jswift-types: warning: type %q: %v", plan.Java.String(), plan.Err)
	}
}
