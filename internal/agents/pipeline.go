package agents

import (
	"context"
	"time"

	"hermes/internal/metrics"
	"hermes/pkg/errors"
	"hermes/pkg/logger"
)

// Pipeline executes an ordered list of agents as a strict left-to-right
// fold over a single string: each agent's output becomes the next agent's
// instruction. The first failure aborts the run with no partial output.
type Pipeline struct {
	name   string
	agents []Agent
	log    *logger.Logger
}

// NewPipeline creates a pipeline over the given agents. The list is
// treated as read-only for the duration of every run.
func NewPipeline(name string, agents []Agent) *Pipeline {
	return &Pipeline{
		name:   name,
		agents: agents,
		log:    logger.Get().With("component", "pipeline", "pipeline", name),
	}
}

// Run threads initialInput through every agent in order and returns the
// final output. An empty agent list is the identity pipeline. The pipeline
// itself supplies no auxiliary context between stages; agents that need
// extra data gather it inside their own Transform.
func (p *Pipeline) Run(ctx context.Context, initialInput string) (string, error) {
	started := time.Now()

	current := initialInput

	for _, agent := range p.agents {
		if err := ctx.Err(); err != nil {
			metrics.PipelineRuns.WithLabelValues(p.name, "error").Inc()
			return "", errors.Wrapf(err, "pipeline %s cancelled", p.name)
		}

		p.log.Debugf("Executing agent: %s", agent.Name())
		stageStart := time.Now()

		output, err := agent.Transform(ctx, current, "")
		if err != nil {
			p.log.Errorf("Agent %s failed: %v (duration: %s)", agent.Name(), err, time.Since(stageStart))
			metrics.PipelineRuns.WithLabelValues(p.name, "error").Inc()
			return "", errors.NewStageError(agent.Name(), err)
		}

		p.log.Debugf("Agent %s completed (duration: %s)", agent.Name(), time.Since(stageStart))
		current = output
	}

	metrics.PipelineRuns.WithLabelValues(p.name, "success").Inc()
	metrics.PipelineDuration.WithLabelValues(p.name).Observe(time.Since(started).Seconds())

	return current, nil
}
