package domino

// Example is a canned input shown to users as a hint.
type Example struct {
	Input string `json:"input"`
	Note  string `json:"note,omitempty"`
}

// Examples lists the sample inputs offered by the front ends. The
// expected result of each is computed with Evaluate, never hard-coded.
var Examples = []Example{
	{Input: "02, 04, 42", Note: "the last tile is flipped"},
	{Input: "11, 22, 33", Note: "no two tiles share a pip"},
	{Input: "31, 00, 13", Note: "valid tiles, but 00 has no partner"},
	{Input: "33", Note: "a single tile is a line"},
	{Input: "7, 12, 34", Note: "every tile needs two pips"},
	{Input: "abc, 12", Note: "pips are digits 0 to 6"},
	{Input: "17, 23", Note: "7 is out of range"},
}
