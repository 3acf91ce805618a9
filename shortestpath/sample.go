package shortestpath

// SampleSource is the starting vertex of SampleMap.
const SampleSource = "Main Street"

// SampleMap returns a small map of seven named locations connected by
// one-way roads.
//
//	Main Street     -> Burberry Avenue  7
//	Burberry Avenue -> Falcon Reach    18
//	Falcon Reach    -> Mystical Forest 49
//	Main Street     -> Fairy River     29
//	Fairy River     -> Dragon's Den     6
//	Dragon's Den    -> Magical Portal   0
func SampleMap() *Graph {
	g := NewGraph()
	for _, e := range []struct {
		from, to string
		weight   int
	}{
		{"Main Street", "Burberry Avenue", 7},
		{"Burberry Avenue", "Falcon Reach", 18},
		{"Falcon Reach", "Mystical Forest", 49},
		{"Main Street", "Fairy River", 29},
		{"Fairy River", "Dragon's Den", 6},
		{"Dragon's Den", "Magical Portal", 0},
	} {
		// Weights are constant and non-negative.
		_ = g.AddEdge(e.from, e.to, e.weight)
	}
	return g
}
