package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/internal/cli/output"
)

const aboutText = `Checks whether a set of domino tiles can be laid out in one row:
  - neighbouring tiles must touch with equal numbers
  - tiles may be turned around
Tiles are written as two digits from 0 to 6, e.g. 02, 44, 61.`

// exampleRows evaluates every canned example.
func exampleRows() ([]output.ExampleRow, error) {
	rows := make([]output.ExampleRow, 0, len(domino.Examples))
	for _, ex := range domino.Examples {
		rep, err := domino.Evaluate(domino.SplitInput(ex.Input))
		if err != nil {
			return nil, err
		}
		rows = append(rows, output.ExampleRow{Input: ex.Input, Note: ex.Note, Result: rep.Message()})
	}

	return rows, nil
}

// NewExamplesCommand creates the examples command.
func NewExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show sample inputs and their results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := exampleRows()
			if err != nil {
				return err
			}

			return output.FromContext(cmd.Context()).Examples(rows)
		},
	}
}

// NewAboutCommand creates the about command.
func NewAboutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Describe the rules",
		Run: func(cmd *cobra.Command, _ []string) {
			_ = output.FromContext(cmd.Context()).Text(aboutText)
		},
	}
}
