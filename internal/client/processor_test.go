package client

import (
	"testing"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/rpc"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

func testProcessorPatch() *show.Patch {
	patch := show.NewPatch()
	root := show.NewFixturePath(1)
	child := root.ExtendedWith(2)
	patch.Fixtures[root] = &show.Fixture{Path: root}
	patch.Fixtures[child] = &show.Fixture{Path: child}
	return patch
}

func TestSetAttributeWithoutChildrenTargetsExactPath(t *testing.T) {
	patch := testProcessorPatch()
	cx := &ProcessorContext{frame: 0, patch: patch, values: rpc.NewAttributeValues()}

	root := show.NewFixturePath(1)
	cx.SetAttribute(NewFixtureCollection(root), attribute.Attribute{Kind: attribute.KindDimmer}, value.New(0.5), false)

	if _, ok := cx.Values().Get(root, attribute.Attribute{Kind: attribute.KindDimmer}); !ok {
		t.Fatal("expected the root fixture's value to be set")
	}
	child := root.ExtendedWith(2)
	if _, ok := cx.Values().Get(child, attribute.Attribute{Kind: attribute.KindDimmer}); ok {
		t.Fatal("child fixture should not receive a value when includeChildren is false")
	}
}

func TestSetAttributeWithChildrenExpandsToSubFixtures(t *testing.T) {
	patch := testProcessorPatch()
	cx := &ProcessorContext{frame: 0, patch: patch, values: rpc.NewAttributeValues()}

	root := show.NewFixturePath(1)
	cx.SetAttribute(NewFixtureCollection(root), attribute.Attribute{Kind: attribute.KindDimmer}, value.New(0.75), true)

	child := root.ExtendedWith(2)
	got, ok := cx.Values().Get(child, attribute.Attribute{Kind: attribute.KindDimmer})
	if !ok {
		t.Fatal("expected the child fixture to inherit the value when includeChildren is true")
	}
	if got.AsFloat32() != 0.75 {
		t.Errorf("child value = %v, want 0.75", got.AsFloat32())
	}
}

func TestFixtureCollectionHelpers(t *testing.T) {
	empty := NewFixtureCollection()
	if !empty.IsEmpty() || empty.Len() != 0 {
		t.Error("NewFixtureCollection() with no paths should be empty")
	}

	fc := NewFixtureCollection(show.NewFixturePath(1), show.NewFixturePath(2))
	if fc.IsEmpty() || fc.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fc.Len())
	}
}
