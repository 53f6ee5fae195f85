package geometry

import (
	"time"

	"github.com/achilleasa/vega/log"
)

// BvhBuilder assembles a bounding volume hierarchy from a set of bounded
// shapes using recursive spatial median splits.
type BvhBuilder struct {
	logger log.Logger

	indices   []int
	nodes     []bvhNode
	nodesUsed int
}

// Create a new BVH builder.
func NewBvhBuilder() *BvhBuilder {
	return &BvhBuilder{
		logger: log.New("bvh"),
	}
}

// Build a hierarchy over the given shapes. MaxChildren and maxDepth are soft
// targets: a node whose spatial median split degenerates is kept as an
// oversized leaf rather than subdivided further. Panics if the shape set is
// empty; validation belongs to the layer constructing the inputs.
func (b *BvhBuilder) Build(shapes AabbSet, maxChildren, maxDepth int) *Bvh {
	count := shapes.Len()
	if count == 0 {
		panic("bvh: cannot build a hierarchy over an empty shape set")
	}

	start := time.Now()

	b.indices = make([]int, count)
	for i := range b.indices {
		b.indices[i] = i
	}

	b.nodes = make([]bvhNode, 2*count-1)
	for i := range b.nodes {
		b.nodes[i].aabb = EmptyAabb()
	}
	b.nodes[0].leftChild = 0
	b.nodes[0].count = count
	b.nodesUsed = 1

	b.updateBounds(0, shapes)
	depth := b.subdivide(0, shapes, maxChildren, maxDepth, 0)

	b.nodes = b.nodes[:b.nodesUsed]

	b.logger.Debugf(
		"built bvh over %d shapes in %d ms: depth %d, nodes %d",
		count, time.Since(start).Nanoseconds()/1e6, depth, b.nodesUsed,
	)

	return &Bvh{
		indices: b.indices,
		nodes:   b.nodes,
		depth:   depth,
	}
}

// Expand the bounding box of a node to include all shapes contained in it.
func (b *BvhBuilder) updateBounds(index int, shapes AabbSet) {
	node := &b.nodes[index]
	for i := 0; i < node.count; i++ {
		node.aabb = node.aabb.Union(shapes.IndexedAabb(b.indices[node.leftChild+i]))
	}
}

// Subdivide a node in two if it holds more than maxChildren shapes. Returns
// the maximum depth reached below this node.
func (b *BvhBuilder) subdivide(index int, shapes AabbSet, maxChildren, maxDepth, currentDepth int) int {
	if b.nodes[index].count <= maxChildren || currentDepth > maxDepth {
		return currentDepth
	}

	// Split along the axis with the largest extent, at its midpoint.
	extent := b.nodes[index].aabb.Maxs().Sub(b.nodes[index].aabb.Mins())
	axis := 2
	if extent[0] > extent[1] && extent[0] > extent[2] {
		axis = 0
	} else if extent[1] > extent[2] {
		axis = 1
	}
	splitPosition := b.nodes[index].aabb.Mins()[axis] + extent[axis]*0.5

	// Hoare-style partition of the node's index range on shape centroids.
	i := b.nodes[index].leftChild
	j := i + b.nodes[index].count - 1
	for i <= j {
		if shapes.IndexedAabb(b.indices[i]).Centre()[axis] < splitPosition {
			i++
		} else {
			b.indices[i], b.indices[j] = b.indices[j], b.indices[i]
			if j == 0 {
				return currentDepth
			}
			j--
		}
	}

	// A degenerate partition leaves this node as an oversized leaf.
	leftCount := i - b.nodes[index].leftChild
	if leftCount == 0 || leftCount == b.nodes[index].count {
		return currentDepth
	}

	leftChildIndex := b.nodesUsed
	b.nodesUsed++
	rightChildIndex := b.nodesUsed
	b.nodesUsed++

	b.nodes[leftChildIndex].leftChild = b.nodes[index].leftChild
	b.nodes[leftChildIndex].count = leftCount

	b.nodes[rightChildIndex].leftChild = i
	b.nodes[rightChildIndex].count = b.nodes[index].count - leftCount

	b.nodes[index].leftChild = leftChildIndex
	b.nodes[index].count = 0

	b.updateBounds(leftChildIndex, shapes)
	b.updateBounds(rightChildIndex, shapes)
	leftDepth := b.subdivide(leftChildIndex, shapes, maxChildren, maxDepth, currentDepth+1)
	rightDepth := b.subdivide(rightChildIndex, shapes, maxChildren, maxDepth, currentDepth+1)

	if leftDepth > rightDepth {
		return leftDepth
	}
	return rightDepth
}
