// Package pipeline wires the data flow spec §2 describes: tokens →
// declaration parser → declaration table (bodies as raw tokens) → AST
// parser (per body) → symbol table population → runtime dispatch.
// Grounded on the teacher's own internal/pipeline.Pipeline/Processor
// sequence (funvibe-funxy/internal/pipeline/pipeline.go): a Pipeline runs
// an ordered list of Processors over one mutable PipelineContext,
// stopping at the first stage that records an error.
package pipeline

// Processor is one pipeline stage: it consumes and returns a
// PipelineContext, recording any failure on ctx.Err rather than
// returning it directly, matching the teacher's "continue on errors to
// collect diagnostics from all stages" shape — here narrowed to
// first-error-wins per spec §7's bail-on-first-error propagation policy.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline runs an ordered sequence of Processors over one context.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered processor list.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, short-circuiting as soon as a stage
// sets ctx.Err (spec §7: "nothing in the core recovers from an error and
// continues").
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, processor := range p.processors {
		if ctx.Err != nil {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
