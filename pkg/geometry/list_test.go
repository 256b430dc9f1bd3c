package geometry

import (
	"math"
	"testing"

	"github.com/user/spacer/pkg/core"
	"github.com/user/spacer/pkg/material"
)

func TestList_NearestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	// Insertion order deliberately back-to-front
	list := NewList(
		NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
		NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected nearest t=1.5, got %g", hit.T)
	}
	if hit.Material != near {
		t.Error("Expected the nearer sphere's material")
	}
}

func TestList_EmptyNeverHits(t *testing.T) {
	list := NewList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, ok := list.Hit(ray, core.FullInterval); ok {
		t.Error("Empty list should never hit")
	}
	if !list.BoundingBox().X.IsEmpty() {
		t.Error("Empty list should have an empty bounding box")
	}
}

func TestList_BoundingBoxGrowsWithAdd(t *testing.T) {
	list := NewList()
	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial()))

	bbox := list.BoundingBox()
	if bbox.X.Min != -1 || bbox.X.Max != 1 {
		t.Fatalf("Expected X [-1, 1], got [%g, %g]", bbox.X.Min, bbox.X.Max)
	}

	list.Add(NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial()))
	bbox = list.BoundingBox()
	if bbox.X.Min != -1 || bbox.X.Max != 6 {
		t.Errorf("Expected X [-1, 6] after add, got [%g, %g]", bbox.X.Min, bbox.X.Max)
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}
}
