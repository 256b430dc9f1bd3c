package geometry

import (
	"sort"

	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/material"
)

// BVHNode is a node of an immutable binary bounding volume hierarchy.
// Interior nodes hold two children; a single-object subtree is represented
// by pointing both children at the same object rather than a separate leaf
// variant.
type BVHNode struct {
	left, right Hittable
	bbox        core.AABB
}

// NewBVH builds a BVH bottom-up over the given objects using a median split
// along the longest axis of the enclosing box. The input slice is copied, so
// callers may keep mutating theirs. An empty input yields a node that never
// hits anything.
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	sorted := make([]Hittable, len(objects))
	copy(sorted, objects)

	return buildBVH(sorted)
}

// buildBVH recursively splits objects. It owns the slice and may reorder it.
func buildBVH(objects []Hittable) *BVHNode {
	bbox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		bbox = bbox.Enclose(obj.BoundingBox())
	}

	node := &BVHNode{bbox: bbox}

	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		axis := bbox.LongestAxis()
		sort.Slice(objects, func(i, j int) bool {
			return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
		})

		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid])
		node.right = buildBVH(objects[mid:])
	}

	return node
}

// Hit prunes the whole subtree with a slab test, then queries the children.
// The right query's upper bound shrinks to the left hit's t, so the nearer
// of the two intersections is always the one returned.
func (n *BVHNode) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	if n.left == nil || !n.bbox.Hit(ray, tRange) {
		return nil, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tRange)
	if okLeft {
		tRange.Max = hitLeft.T
	}

	if hitRight, okRight := n.right.Hit(ray, tRange); okRight {
		return hitRight, true
	}

	return hitLeft, okLeft
}

// BoundingBox returns the box enclosing every object in the subtree
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
