package connect

import (
	"math"
	"sort"

	"github.com/asim/quadtree"

	"tikzsketch/pkg/shape"
)

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// candidate is a shape reachable from the tree, with its scan rank: dots
// rank before morphisms, lower IDs before higher ones.
type candidate struct {
	shape *shape.Shape
	rank  int
}

// centroidTree indexes shape centroids for nearest-shape queries.
type centroidTree struct {
	quadTree *quadtree.QuadTree
	all      []candidate
}

func newCentroidTree(dots, morphisms []shape.Shape) *centroidTree {
	t := &centroidTree{}
	for i := range dots {
		t.all = append(t.all, candidate{shape: &dots[i], rank: len(t.all)})
	}
	for i := range morphisms {
		t.all = append(t.all, candidate{shape: &morphisms[i], rank: len(t.all)})
	}
	if len(t.all) == 0 {
		return t
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range t.all {
		p := c.shape.Centroid
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	midX := (maxX + minX) / 2
	midY := (maxY + minY) / 2
	// Add a small margin to avoid dropping centroids at the edges
	halfWidth := maxX - midX + 10
	halfHeight := maxY - midY + 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	t.quadTree = quadtree.New(aabb, 0, nil)

	for _, c := range t.all {
		t.add(c)
	}
	return t
}

func (t *centroidTree) add(c candidate) {
	x, y := c.shape.Centroid.X, c.shape.Centroid.Y
	point := quadtree.NewPoint(x, y, nil)
	points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
	if len(points) > 0 {
		pointX, pointY := points[0].Coordinates()
		if pointX == x && pointY == y {
			// Shapes sharing a centroid share a tree point
			shared := points[0].Data().(*[]candidate)
			*shared = append(*shared, c)
			return
		}
	}
	t.quadTree.Insert(quadtree.NewPoint(x, y, &[]candidate{c}))
}

// within returns the shapes whose centroid may lie within radius of (x, y),
// in scan order. The box search over-approximates the disc; callers compare
// exact distances.
func (t *centroidTree) within(x, y, radius float64) []candidate {
	if t.quadTree == nil {
		return nil
	}
	search := quadtree.NewAABB(
		quadtree.NewPoint(x, y, nil),
		quadtree.NewPoint(radius, radius, nil),
	)
	var found []candidate
	for _, point := range t.quadTree.Search(search) {
		found = append(found, *point.Data().(*[]candidate)...)
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].rank < found[j].rank
	})
	return found
}
