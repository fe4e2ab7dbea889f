package domino

import (
	"fmt"
	"strings"
)

// Outcome is the category of an evaluation.
type Outcome int

const (
	// OutcomeInvalid means the input was rejected before any search.
	OutcomeInvalid Outcome = iota + 1
	// OutcomeNoChain means the input is valid but no line exists.
	OutcomeNoChain
	// OutcomeChain means a line using every tile was found.
	OutcomeChain
)

// Literal messages shown for each outcome.
const (
	MessageInvalid = "invalid input"
	MessageNoChain = "cannot be arranged in a row"
	MessageChain   = "can be arranged"
)

var outcomeNames = map[Outcome]string{
	OutcomeInvalid: "invalid",
	OutcomeNoChain: "no_chain",
	OutcomeChain:   "chain",
}

// String returns the short machine name of o.
func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText encodes o by name.
func (o Outcome) MarshalText() ([]byte, error) {
	s, ok := outcomeNames[o]
	if !ok {
		return nil, fmt.Errorf("domino: unknown outcome %d", int(o))
	}

	return []byte(s), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	name := strings.TrimSpace(string(b))
	for k, v := range outcomeNames {
		if v == name {
			*o = k
			return nil
		}
	}

	return fmt.Errorf("domino: unknown outcome %q", name)
}
