// Package commands implements the domino CLI subcommands.
package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/katalvlaran/domino"
	"github.com/katalvlaran/domino/chain"
	"github.com/katalvlaran/domino/internal/cli/config"
	"github.com/katalvlaran/domino/solver"
)

// solverOptions builds the search options from configuration.
func solverOptions(ctx context.Context, cfg *config.Config, logger *slog.Logger) []solver.Option {
	opts := []solver.Option{solver.WithContext(ctx)}
	if cfg.Precheck {
		opts = append(opts, solver.WithEulerPrecheck())
	}
	if cfg.Trace {
		opts = append(opts, solver.WithOnPlace(func(depth int, p chain.Placement) error {
			logger.Debug("place",
				"depth", depth,
				"index", p.Index,
				"tile", p.Tile.String(),
				"flipped", p.Flipped,
			)
			return nil
		}))
	}

	return opts
}

// argsToTokens accepts "02,04,42", "02, 04, 42" or "02 04 42" spread over
// any number of arguments.
func argsToTokens(args []string) []string {
	return domino.SplitInput(strings.Join(strings.Fields(strings.Join(args, ",")), ","))
}
