package resolver

import (
	"testing"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

var dimmer = attribute.Attribute{Kind: attribute.KindDimmer}

type mapAttributeValues map[show.FixturePath]map[attribute.Attribute]value.ClampedValue

func (m mapAttributeValues) Get(path show.FixturePath, attr attribute.Attribute) (value.ClampedValue, bool) {
	byAttr, ok := m[path]
	if !ok {
		return 0, false
	}
	v, ok := byAttr[attr]
	return v, ok
}

func physicalDimmerFixture(path show.FixturePath, addr dmx.Address) *show.Fixture {
	return &show.Fixture{
		Path: path,
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{
			dimmer: {Kind: show.FixtureChannelFunctionKind{Addresses: []dmx.Address{addr}}},
		},
	}
}

func TestResolvePhysicalChannelFunction(t *testing.T) {
	path := show.NewFixturePath(1)
	addr := dmx.Address{Universe: 1, Channel: 1}

	patch := show.NewPatch()
	patch.Fixtures[path] = physicalDimmerFixture(path, addr)

	pending := mapAttributeValues{path: {dimmer: value.New(1.0)}}
	multiverse := dmx.NewMultiverse()

	Resolve(patch, pending, multiverse)

	if got := multiverse.GetValue(addr); got != 255 {
		t.Errorf("GetValue(%+v) = %d, want 255", addr, got)
	}
}

func TestResolveUnsetAttributeLeavesMultiverseUntouched(t *testing.T) {
	path := show.NewFixturePath(1)
	addr := dmx.Address{Universe: 1, Channel: 1}

	patch := show.NewPatch()
	patch.Fixtures[path] = physicalDimmerFixture(path, addr)

	multiverse := dmx.NewMultiverse()
	Resolve(patch, mapAttributeValues{}, multiverse)

	if multiverse.HasUniverse(1) {
		t.Error("resolving with no pending values should not create any universe")
	}
}

func TestResolveOverrideRelationAppliesToFollower(t *testing.T) {
	masterPath := show.NewFixturePath(1)
	followerPath := show.NewFixturePath(2)
	addr := dmx.Address{Universe: 1, Channel: 1}

	patch := show.NewPatch()
	patch.Fixtures[masterPath] = &show.Fixture{
		Path: masterPath,
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{
			dimmer: {Kind: show.FixtureChannelFunctionKind{
				IsVirtual: true,
				Relations: []show.Relation{
					{Kind: show.RelationKindOverride, FixturePath: followerPath, Attribute: dimmer},
				},
			}},
		},
	}
	patch.Fixtures[followerPath] = physicalDimmerFixture(followerPath, addr)

	pending := mapAttributeValues{masterPath: {dimmer: value.New(0.5)}}
	multiverse := dmx.NewMultiverse()

	Resolve(patch, pending, multiverse)

	if got := multiverse.GetValue(addr); got != 128 {
		t.Errorf("GetValue(%+v) = %d, want 128 (0.5 rounded)", addr, got)
	}
}

func TestResolveMultiplyRelationCombinesWithFollowerPendingValue(t *testing.T) {
	masterPath := show.NewFixturePath(1)
	followerPath := show.NewFixturePath(2)
	addr := dmx.Address{Universe: 1, Channel: 1}

	patch := show.NewPatch()
	patch.Fixtures[masterPath] = &show.Fixture{
		Path: masterPath,
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{
			dimmer: {Kind: show.FixtureChannelFunctionKind{
				IsVirtual: true,
				Relations: []show.Relation{
					{Kind: show.RelationKindMultiply, FixturePath: followerPath, Attribute: dimmer},
				},
			}},
		},
	}
	patch.Fixtures[followerPath] = physicalDimmerFixture(followerPath, addr)

	pending := mapAttributeValues{
		masterPath:   {dimmer: value.New(0.5)},
		followerPath: {dimmer: value.New(0.4)},
	}
	multiverse := dmx.NewMultiverse()

	Resolve(patch, pending, multiverse)

	// The deferred multiply write (0.5 * 0.4 = 0.2) runs after the
	// follower's own direct resolution and overwrites it.
	if got := multiverse.GetValue(addr); got != 51 {
		t.Errorf("GetValue(%+v) = %d, want 51 (0.5*0.4 rounded)", addr, got)
	}
}

func TestResolveDeferredWriteSkipsMissingFollower(t *testing.T) {
	masterPath := show.NewFixturePath(1)
	missingPath := show.NewFixturePath(99)

	patch := show.NewPatch()
	patch.Fixtures[masterPath] = &show.Fixture{
		Path: masterPath,
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{
			dimmer: {Kind: show.FixtureChannelFunctionKind{
				IsVirtual: true,
				Relations: []show.Relation{
					{Kind: show.RelationKindOverride, FixturePath: missingPath, Attribute: dimmer},
				},
			}},
		},
	}

	pending := mapAttributeValues{masterPath: {dimmer: value.New(1.0)}}
	multiverse := dmx.NewMultiverse()

	// Should not panic even though the relation targets a fixture that
	// isn't in the patch.
	Resolve(patch, pending, multiverse)
}
