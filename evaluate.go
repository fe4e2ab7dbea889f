package domino

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/domino/chain"
	"github.com/katalvlaran/domino/solver"
	"github.com/katalvlaran/domino/tile"
)

// Report is the result of Evaluate.
type Report struct {
	// Outcome is the result category.
	Outcome Outcome `json:"outcome"`

	// Tokens are the raw tokens as received.
	Tokens []string `json:"tokens"`

	// Chain is the line found, one oriented tile per entry; nil unless
	// Outcome is OutcomeChain.
	Chain []string `json:"chain,omitempty"`

	// Placements pairs every chain entry with its input index.
	Placements []chain.Placement `json:"placements,omitempty"`

	// Stats describes the search; zero for invalid input.
	Stats solver.Stats `json:"stats"`

	// Reason holds the validator's diagnostic for invalid input.
	Reason string `json:"reason,omitempty"`
}

// Message renders the literal text for the outcome, e.g.
// "can be arranged: 02, 24, 40".
func (r Report) Message() string {
	switch r.Outcome {
	case OutcomeChain:
		return MessageChain + ": " + strings.Join(r.Chain, ", ")
	case OutcomeNoChain:
		return MessageNoChain
	default:
		return MessageInvalid
	}
}

// Evaluate validates tokens and, if they are tiles, searches for a line.
// Invalid input and "no line" are reported through Outcome; the error is
// non-nil only when the search itself was aborted (context or hook).
func Evaluate(tokens []string, opts ...solver.Option) (Report, error) {
	rep := Report{Tokens: append([]string(nil), tokens...)}

	// 1) validator
	tiles, err := tile.Validate(tokens)
	if err != nil {
		rep.Outcome = OutcomeInvalid
		rep.Reason = err.Error()

		return rep, nil
	}

	// 2) solver
	res, err := solver.Solve(tiles, opts...)
	if err != nil {
		return rep, fmt.Errorf("domino: evaluate: %w", err)
	}
	rep.Stats = res.Stats

	// 3) categorise
	if !res.Found {
		rep.Outcome = OutcomeNoChain

		return rep, nil
	}
	rep.Outcome = OutcomeChain
	rep.Chain = res.Chain.Strings()
	rep.Placements = res.Chain.Placements()

	return rep, nil
}

// SplitInput turns a line such as "02, 04 ,42," into tokens: it splits on
// commas, trims surrounding space and drops empty pieces.
func SplitInput(line string) []string {
	var out []string
	for _, part := range strings.Split(line, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
