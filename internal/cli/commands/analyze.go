package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/eulerian"
	"github.com/katalvlaran/domino/internal/cli/output"
	"github.com/katalvlaran/domino/tile"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <tiles>",
		Short: "Show the pip degree table behind the answer",
		Long: `Treat every tile as an edge between its two pip values and report
each pip's degree, the odd pips and the number of connected groups.

A line exists exactly when the tiles form one group with zero or two
odd pips.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := output.FromContext(cmd.Context())

			tiles, err := tile.Validate(argsToTokens(args))
			if err != nil {
				return r.Report(domino.Report{Outcome: domino.OutcomeInvalid})
			}

			var trail []string
			if c, ok := eulerian.Trail(tiles); ok {
				trail = c.Strings()
			}

			return r.Analysis(eulerian.Analyze(tiles), trail)
		},
	}
}
