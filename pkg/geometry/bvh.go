package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Both children are always set; a single shape appears as both children.
type BVHNode struct {
	Box   core.AABB // Cached union of the children's boxes
	Left  Shape
	Right Shape
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode // nil for an empty hierarchy, which never hits
}

// NewBVH constructs a BVH over shapes for the time interval [time0, time1].
// The split axis at each level is drawn from the sampler, so a fixed seed gives a fixed tree.
func NewBVH(shapes []Shape, time0, time1 float64, sampler core.Sampler) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Sort a copy so the caller's slice is left untouched
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy, time0, time1, sampler)}
}

// buildBVH recursively splits the shapes at the median along a random axis
func buildBVH(shapes []Shape, time0, time1 float64, sampler core.Sampler) *BVHNode {
	axis := core.RandomIntn(sampler, 3)
	less := func(a, b Shape) bool {
		return a.BoundingBox(time0, time1).Min.Axis(axis) < b.BoundingBox(time0, time1).Min.Axis(axis)
	}

	node := &BVHNode{}
	switch len(shapes) {
	case 1:
		node.Left, node.Right = shapes[0], shapes[0]
	case 2:
		if less(shapes[0], shapes[1]) {
			node.Left, node.Right = shapes[0], shapes[1]
		} else {
			node.Left, node.Right = shapes[1], shapes[0]
		}
	default:
		sort.SliceStable(shapes, func(i, j int) bool { return less(shapes[i], shapes[j]) })
		mid := len(shapes) / 2
		node.Left = buildBVH(shapes[:mid], time0, time1, sampler)
		node.Right = buildBVH(shapes[mid:], time0, time1, sampler)
	}

	node.Box = node.Left.BoundingBox(time0, time1).Union(node.Right.BoundingBox(time0, time1))
	return node
}

// Hit tests if a ray intersects any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox implements the Shape interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox(time0, time1 float64) core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.Box
}

// Hit tests the node's box, then both children, narrowing the interval after a left hit
func (node *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !node.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := node.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := node.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union of the children's boxes
func (node *BVHNode) BoundingBox(time0, time1 float64) core.AABB {
	return node.Box
}

// Depth returns the number of node levels in the tree
func (bvh *BVH) Depth() int {
	if bvh.Root == nil {
		return 0
	}
	return bvh.Root.depth()
}

func (node *BVHNode) depth() int {
	left, right := 0, 0
	if child, ok := node.Left.(*BVHNode); ok {
		left = child.depth()
	}
	if child, ok := node.Right.(*BVHNode); ok {
		right = child.depth()
	}
	return 1 + max(left, right)
}
