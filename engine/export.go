package engine

import "github.com/jbraz05/Spotify-Graph-Explorer/core"

// UnknownTrack labels an edge that was loaded without a track name.
const UnknownTrack = "Unknown"

// ExportNode is one artist with its out-degree.
type ExportNode struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"`
}

// ExportEdge is one collaboration. From/To give the direction the edge was
// found in; ID is the sorted pair key "U_V".
type ExportEdge struct {
	ID       string  `json:"id"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Track    string  `json:"track"`
	Weight   float64 `json:"weight"`
	Negative bool    `json:"negative"`
}

// Export is a renderer-friendly view of the working graph.
type Export struct {
	Directed bool         `json:"directed"`
	Nodes    []ExportNode `json:"nodes"`
	Edges    []ExportEdge `json:"edges"`
}

// Export lists every node and every unordered collaboration once, in
// ascending ID order. After negate-and-direct the surviving one-way arc is
// the one exported.
func (e *Engine) Export() Export {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := Export{
		Directed: e.g.Directed(),
		Nodes:    []ExportNode{},
		Edges:    []ExportEdge{},
	}
	seen := make(map[core.Pair]struct{})
	for _, u := range e.g.Vertices() {
		nbrs := e.g.Neighbors(u)
		out.Nodes = append(out.Nodes, ExportNode{ID: u, Degree: len(nbrs)})
		for _, nb := range nbrs {
			p := core.MakePair(u, nb.ID)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}

			track, ok := e.g.Track(u, nb.ID)
			if !ok || track == "" {
				track = UnknownTrack
			}
			out.Edges = append(out.Edges, ExportEdge{
				ID:       p.String(),
				From:     u,
				To:       nb.ID,
				Track:    track,
				Weight:   nb.Weight,
				Negative: nb.Weight < 0,
			})
		}
	}

	return out
}
