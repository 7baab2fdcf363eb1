package generate

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun   bool
	Force    bool
	Writer   io.Writer       // Where to write progress output (defaults to os.Stderr)
	Observer func(Operation) // Called after each executed operation
}

// Execute runs operations in two phases: validate everything, then execute
// (or report, for dry runs). The first failure stops the run.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
		if opts.Observer != nil {
			opts.Observer(op)
		}
	}

	return nil
}
