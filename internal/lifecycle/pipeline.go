// Package lifecycle runs ordered stages around application startup.
//
// Ordering is explicit: every stage carries a priority, lower runs first,
// and stages sharing a priority run in registration order. The pre-start
// pipeline frees network capacity before anything tries to allocate, then
// establishes the shared bridge and the platform bootstrap.
package lifecycle

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/zerowrap"
)

// Stage is a single step in a pipeline.
type Stage struct {
	Name     string
	Priority int
	Run      func(ctx context.Context) error
}

// Pipeline executes stages sequentially in priority order.
type Pipeline struct {
	name   string
	stages []Stage
}

// NewPipeline creates an empty pipeline.
func NewPipeline(name string) *Pipeline {
	return &Pipeline{name: name}
}

// Add registers a stage. Registration order breaks priority ties.
func (p *Pipeline) Add(stage Stage) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// Run executes all stages and stops at the first failure.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer: "lifecycle",
		"pipeline":          p.name,
	})
	log := zerowrap.FromCtx(ctx)

	ordered := slices.Clone(p.stages)
	slices.SortStableFunc(ordered, func(a, b Stage) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	start := time.Now()
	for _, stage := range ordered {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline %s canceled before stage %s: %w", p.name, stage.Name, err)
		}

		stageStart := time.Now()
		if err := stage.Run(ctx); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		log.Debug().
			Str("stage", stage.Name).
			Str(zerowrap.FieldDuration, time.Since(stageStart).String()).
			Msg("stage complete")
	}

	log.Info().
		Int(zerowrap.FieldCount, len(ordered)).
		Str(zerowrap.FieldDuration, time.Since(start).String()).
		Msg("pipeline complete")

	return nil
}
