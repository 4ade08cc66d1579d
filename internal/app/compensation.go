package app

import (
	"context"

	"github.com/rs/zerolog"
)

// compensation is the rollback stack of one aggregate creation. The
// orchestrator pushes an undo after every committed step and runs the
// stack newest-first on terminal failure. Undo failures are logged and
// swallowed so the original error reaches the caller untouched.
type compensation struct {
	steps []compStep
}

type compStep struct {
	label string
	undo  func(context.Context) error
}

func (c *compensation) push(label string, undo func(context.Context) error) {
	c.steps = append(c.steps, compStep{label: label, undo: undo})
}

// run executes the stack in reverse push order. Best effort, no
// retries: every step runs even when an earlier one fails.
func (c *compensation) run(ctx context.Context, log zerolog.Logger) {
	for i := len(c.steps) - 1; i >= 0; i-- {
		st := c.steps[i]
		if err := st.undo(ctx); err != nil {
			log.Error().Err(err).Str("step", st.label).Msg("rollback step failed")
			continue
		}
		log.Debug().Str("step", st.label).Msg("rolled back")
	}
	c.steps = nil
}
