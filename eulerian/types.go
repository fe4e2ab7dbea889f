package eulerian

// Vertices is the number of distinct pip values.
const Vertices = 7

// Report summarises the digit multigraph of a tile list.
type Report struct {
	// Degree counts tile ends per pip value; a double adds two.
	Degree [Vertices]int `json:"degree"`

	// Odd lists the pip values of odd degree in ascending order.
	Odd []int `json:"odd"`

	// Connected is true when every vertex of non-zero degree is reachable
	// from every other one. An empty list is not connected.
	Connected bool `json:"connected"`

	// Components counts connected components among vertices with edges.
	Components int `json:"components"`

	// HasTrail reports whether an arrangement using every tile exists.
	HasTrail bool `json:"hasTrail"`

	// Start is the pip an arrangement must begin with when there are two
	// odd vertices, or the lowest used pip otherwise; -1 for no tiles.
	Start int `json:"start"`
}
