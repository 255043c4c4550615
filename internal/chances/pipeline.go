package chances

import (
	"context"
	"slices"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// StageFunc receives the previous stage's output and returns its replacement
type StageFunc[T any] func(ctx context.Context, fc domain.FishingContext, value T) T

type stage[T any] struct {
	name string
	fn   StageFunc[T]
}

// Pipeline is an ordered list of named override stages. Each stage gets its own
// copy of the previous output, so a stage cannot alter what another stage saw.
type Pipeline[T any] struct {
	clone  func(T) T
	stages []stage[T]
}

// NewPipeline creates a pipeline. clone copies values between stages and may be
// nil for plain values.
func NewPipeline[T any](clone func(T) T) *Pipeline[T] {
	return &Pipeline[T]{clone: clone}
}

// NewWeightPipeline creates a pipeline over weighted lists
func NewWeightPipeline[T any]() *Pipeline[[]Weighted[T]] {
	return NewPipeline(func(ws []Weighted[T]) []Weighted[T] { return slices.Clone(ws) })
}

// NewContextPipeline creates a pipeline over fishing contexts
func NewContextPipeline() *Pipeline[domain.FishingContext] {
	return NewPipeline(domain.FishingContext.Clone)
}

// Add appends a stage. Stages run in the order they were added.
func (p *Pipeline[T]) Add(name string, fn StageFunc[T]) *Pipeline[T] {
	p.stages = append(p.stages, stage[T]{name: name, fn: fn})
	return p
}

// Len is the number of stages
func (p *Pipeline[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.stages)
}

// Run passes value through every stage. A nil pipeline returns value unchanged.
func (p *Pipeline[T]) Run(ctx context.Context, fc domain.FishingContext, value T) T {
	if p == nil {
		return value
	}
	log := logger.FromContext(ctx)
	for _, s := range p.stages {
		in := value
		if p.clone != nil {
			in = p.clone(value)
		}
		value = s.fn(ctx, fc, in)
		log.Debug(LogMsgStageApplied, LogFieldStage, s.name)
	}
	return value
}
