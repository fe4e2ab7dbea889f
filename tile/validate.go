package tile

import (
	"fmt"
	"unicode/utf8"
)

// Valid reports whether token is a well-formed tile: exactly two
// characters, each an ASCII digit between '0' and '6'.
// Length is counted in characters so that a multi-byte rune is rejected
// as a non-digit rather than by its byte length.
func Valid(token string) bool {
	if utf8.RuneCountInString(token) != 2 || len(token) != 2 {
		return false
	}

	return isPip(token[0]) && isPip(token[1])
}

func isPip(c byte) bool {
	return c >= '0' && c <= '0'+MaxPip
}

// Validate checks a whole token list and converts it to tiles, keeping
// input order. The input slice is not modified.
//
// Steps:
//  1. Reject an empty list with ErrEmptyInput.
//  2. Reject the first malformed token with ErrInvalidInput.
//  3. Return one Tile per token.
func Validate(tokens []string) ([]Tile, error) {
	// 1) empty input
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	// 2) every token must be a tile
	out := make([]Tile, 0, len(tokens))
	for i, tok := range tokens {
		t, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		out = append(out, t)
	}

	// 3) accepted
	return out, nil
}
