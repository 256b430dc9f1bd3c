package geometry

import (
	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/material"
)

// List is a flat ordered collection of hittables searched linearly
type List struct {
	objects []Hittable
	bbox    core.AABB
}

// NewList creates a list from the given objects
func NewList(objects ...Hittable) *List {
	list := &List{bbox: core.EmptyAABB}
	for _, obj := range objects {
		list.Add(obj)
	}
	return list
}

// Add appends an object and grows the aggregate bounding box
func (l *List) Add(obj Hittable) {
	l.objects = append(l.objects, obj)
	l.bbox = l.bbox.Enclose(obj.BoundingBox())
}

// Objects returns the accumulated objects in insertion order
func (l *List) Objects() []Hittable {
	return l.objects
}

// Len returns the number of objects in the list
func (l *List) Len() int {
	return len(l.objects)
}

// Hit scans all children and keeps the nearest intersection. The query
// upper bound shrinks as hits are found, so a NaN t from degenerate
// geometry can never displace a valid hit.
func (l *List) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestRange := tRange

	for _, obj := range l.objects {
		if hit, ok := obj.Hit(ray, closestRange); ok {
			closest = hit
			closestRange.Max = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the enclosing box of all objects added so far
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
