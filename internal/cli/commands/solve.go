package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/internal/cli/config"
	"github.com/katalvlaran/domino/internal/cli/output"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <tiles>",
		Short: "Check whether tiles can be laid out in one line",
		Long: `Check whether all given domino tiles can be arranged in a single line
where touching halves carry the same pips. Tiles may be flipped.

Tiles are two digits from 0 to 6, separated by commas or spaces.
Prints one arrangement when it exists.`,
		Example: `  domino solve 02,04,42
  domino solve 11 22 33
  domino solve "31, 00, 13" -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.GetLogger(ctx)

			rep, err := domino.Evaluate(argsToTokens(args), solverOptions(ctx, cfg, logger)...)
			if err != nil {
				return err
			}
			logger.Info("evaluated",
				"outcome", rep.Outcome.String(),
				"tiles", len(rep.Tokens),
				"nodes", rep.Stats.Nodes,
				"dur", rep.Stats.Duration,
			)
			if rep.Reason != "" {
				logger.Debug("rejected", "reason", rep.Reason)
			}

			return output.FromContext(ctx).Report(rep)
		},
	}
}
