package geometry

import "sort"

// AabbSet is a fixed-size shape collection whose bounding boxes can be
// addressed by index. Meshes expose their triangles this way and scenes
// expose their entities.
type AabbSet interface {
	// Get the number of shapes in the set.
	Len() int

	// Get the bounding box of the shape at the given index.
	IndexedAabb(index int) Aabb
}

// Bvh node. A count of zero marks an internal node whose children live at
// leftChild and leftChild+1; a positive count marks a leaf holding that many
// entries of the index permutation starting at leftChild.
type bvhNode struct {
	aabb      Aabb
	leftChild int
	count     int
}

// Bvh is a bounding volume hierarchy over an indexed shape collection. Nodes
// are stored in a flat arena and reference each other by index. The tree is
// built once and never mutated afterwards.
type Bvh struct {
	indices []int
	nodes   []bvhNode
	depth   int
}

// Candidate is a shape whose bounding box is crossed by a query ray, paired
// with the distance at which the ray enters that box.
type Candidate struct {
	Index    int
	Distance float64
}

// Get the number of nodes in the hierarchy.
func (b *Bvh) NodeCount() int {
	return len(b.nodes)
}

// Get the maximum depth reached during construction.
func (b *Bvh) Depth() int {
	return b.depth
}

// Get the bounding box enclosing every shape in the hierarchy.
func (b *Bvh) Aabb() Aabb {
	return b.nodes[0].aabb
}

// Collect the shapes whose bounding boxes the ray crosses, sorted ascending
// by box entry distance. The result is a candidate set: box entry order is
// only a lower bound on true intersection order, so callers must run the
// exact shape intersection test on every candidate and keep the minimum.
func (b *Bvh) RayIntersections(ray *Ray, shapes AabbSet) []Candidate {
	var hits []Candidate
	b.rayIntersectNode(0, ray, shapes, &hits)
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func (b *Bvh) rayIntersectNode(nodeIndex int, ray *Ray, shapes AabbSet, hits *[]Candidate) {
	node := &b.nodes[nodeIndex]
	if !node.aabb.RayIntersect(ray) {
		return
	}

	if node.count == 0 {
		b.rayIntersectNode(node.leftChild, ray, shapes, hits)
		b.rayIntersectNode(node.leftChild+1, ray, shapes, hits)
		return
	}

	for i := 0; i < node.count; i++ {
		shapeIndex := b.indices[node.leftChild+i]
		if distance, ok := shapes.IndexedAabb(shapeIndex).RayIntersectDistance(ray); ok {
			*hits = append(*hits, Candidate{Index: shapeIndex, Distance: distance})
		}
	}
}
