// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexarch

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Adjacency maps every distinct vertex of a mesh to the edge vectors leaving it.
//
// For an edge (a, b) the vector b-a is recorded at a and a-b at b.
// An Adjacency is read-only once built.
type Adjacency struct {
	Vertices []r3.Vector

	// NOTE: Per vertex, in the order the edges were given.
	EdgeVectors []r3.Vector
	Offsets     []int

	mergeEps float64
	exact    map[r3.Vector]int
	cells    map[cellKey][]int
}

// NewAdjacency builds the adjacency of the given vertices and edges.
//
// Vertices are keyed by exact coordinates unless WithMergeEps is given, in which
// case a vertex within the merge distance of an earlier one is folded into it.
// It returns an error wrapping ErrInvalidArgument if an option is invalid or an
// edge endpoint is not one of the vertices.
func NewAdjacency(vertices []r3.Vector, edges []Edge, setters ...Option) (*Adjacency, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	return newAdjacency(vertices, edges, opts)
}

func newAdjacency(vertices []r3.Vector, edges []Edge, opts Options) (*Adjacency, error) {
	adj := &Adjacency{
		mergeEps: opts.MergeEps,
		exact:    make(map[r3.Vector]int, len(vertices)),
	}
	if adj.mergeEps > 0 {
		adj.cells = make(map[cellKey][]int, len(vertices))
	}

	for _, v := range vertices {
		if _, ok := adj.exact[v]; ok {
			continue
		}
		idx, ok := adj.nearby(v)
		if !ok {
			idx = len(adj.Vertices)
			adj.Vertices = append(adj.Vertices, v)
			if adj.cells != nil {
				key := adj.cellOf(v)
				adj.cells[key] = append(adj.cells[key], idx)
			}
		}
		adj.exact[v] = idx
	}

	ends := make([][2]int, len(edges))
	for i, e := range edges {
		a, ok := adj.Lookup(e.A)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d endpoint %v is not a vertex", ErrInvalidArgument, i, e.A)
		}
		b, ok := adj.Lookup(e.B)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d endpoint %v is not a vertex", ErrInvalidArgument, i, e.B)
		}
		ends[i] = [2]int{a, b}
	}

	numVertices := len(adj.Vertices)
	adj.Offsets = make([]int, numVertices+1)
	for _, end := range ends {
		adj.Offsets[end[0]+1]++
		adj.Offsets[end[1]+1]++
	}
	for i := range numVertices {
		adj.Offsets[i+1] += adj.Offsets[i]
	}

	adj.EdgeVectors = make([]r3.Vector, 2*len(edges))
	nxt := make([]int, numVertices)
	copy(nxt, adj.Offsets[:numVertices])
	for i, end := range ends {
		e := edges[i]
		adj.EdgeVectors[nxt[end[0]]] = e.B.Sub(e.A)
		nxt[end[0]]++
		adj.EdgeVectors[nxt[end[1]]] = e.A.Sub(e.B)
		nxt[end[1]]++
	}

	return adj, nil
}

// NumVertices returns the number of distinct vertices.
func (adj *Adjacency) NumVertices() int {
	return len(adj.Vertices)
}

// Vertex returns the position of vertex i. It panics if i is out of range.
func (adj *Adjacency) Vertex(i int) r3.Vector {
	if i < 0 || i >= len(adj.Vertices) {
		panic("Vertex: i out of range")
	}
	return adj.Vertices[i]
}

// Incident returns the edge vectors leaving vertex i. It panics if i is out of range.
func (adj *Adjacency) Incident(i int) []r3.Vector {
	if i < 0 || i+1 >= len(adj.Offsets) {
		panic("Incident: i out of range")
	}
	return adj.EdgeVectors[adj.Offsets[i]:adj.Offsets[i+1]]
}

// Degree returns the number of edge vectors leaving vertex i. It panics if i is out of range.
func (adj *Adjacency) Degree(i int) int {
	return len(adj.Incident(i))
}

// Lookup returns the index of the vertex at p.
// Without a merge distance only exact coordinates match.
func (adj *Adjacency) Lookup(p r3.Vector) (int, bool) {
	if idx, ok := adj.exact[p]; ok {
		return idx, true
	}
	return adj.nearby(p)
}

type cellKey [3]int64

func (adj *Adjacency) cellOf(p r3.Vector) cellKey {
	return cellKey{
		int64(math.Floor(p.X / adj.mergeEps)),
		int64(math.Floor(p.Y / adj.mergeEps)),
		int64(math.Floor(p.Z / adj.mergeEps)),
	}
}

// nearby returns the lowest indexed vertex within mergeEps of p.
func (adj *Adjacency) nearby(p r3.Vector) (int, bool) {
	if adj.cells == nil {
		return 0, false
	}

	best := -1
	c := adj.cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, idx := range adj.cells[cellKey{c[0] + dx, c[1] + dy, c[2] + dz}] {
					if best >= 0 && idx >= best {
						continue
					}
					if adj.Vertices[idx].Distance(p) <= adj.mergeEps {
						best = idx
					}
				}
			}
		}
	}
	return best, best >= 0
}
