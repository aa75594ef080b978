// Package colour provides perceptual ordering of colour sequences.
package colour

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Near-grayscale entries brighter than this are grouped at the end of the
// sequence so whites and light greys read as one run.
const (
	neutralSaturationMax = 0.05
	neutralLightnessMin  = 0.75
)

// Sequence returns a visiting order over cols that places perceptually
// similar colours next to each other. The order is a permutation of the
// input indices, always starting at index 0.
//
// The path is built greedily: from the current colour, the nearest unvisited
// colour in Oklab space is appended next, with ties broken by lowest index.
// This approximates the shortest Hamiltonian path in O(n²) time; transitions
// near the end of the path can be locally poor, which is an accepted
// tradeoff against combinatorial search.
//
// A stable refinement pass then moves bright near-grayscale entries to the
// end of the sequence, ordered among themselves by increasing lightness.
// All other entries keep their path order.
func Sequence(cols []colorful.Color) []int {
	if len(cols) == 0 {
		return nil
	}

	type okPoint struct {
		l, a, b float64
	}
	points := make([]okPoint, len(cols))
	for i, c := range cols {
		points[i].l, points[i].a, points[i].b = OkLab(c)
	}

	// Squared distances order the same as Euclidean ones.
	distance := func(p, q okPoint) float64 {
		dl := p.l - q.l
		da := p.a - q.a
		db := p.b - q.b
		return dl*dl + da*da + db*db
	}

	path := make([]int, 0, len(cols))
	visited := make([]bool, len(cols))
	path = append(path, 0)
	visited[0] = true
	current := 0

	for len(path) < len(cols) {
		nearest := -1
		nearestDist := 0.0
		for i := range points {
			if visited[i] {
				continue
			}
			d := distance(points[current], points[i])
			if nearest < 0 || d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}
		visited[nearest] = true
		path = append(path, nearest)
		current = nearest
	}

	// Sort keys per entry index: (0,0) keeps path order, (1,lightness)
	// pushes light neutrals to the tail.
	type sortKey struct {
		group     int
		lightness int
	}
	keys := make([]sortKey, len(cols))
	for i, c := range cols {
		_, s, l := c.Hsl()
		if s < neutralSaturationMax && l > neutralLightnessMin {
			keys[i] = sortKey{group: 1, lightness: int(math.Round(l * 100))}
		}
	}

	sort.SliceStable(path, func(i, j int) bool {
		ki, kj := keys[path[i]], keys[path[j]]
		if ki.group != kj.group {
			return ki.group < kj.group
		}
		return ki.lightness < kj.lightness
	})

	return path
}
