package server

import (
	"testing"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/rpc"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

func testPatch(t *testing.T) *show.Patch {
	t.Helper()
	patch := show.NewPatch()
	path := show.NewFixturePath(1)
	addr := dmx.NewAddress(1, 1)

	patch.Fixtures[path] = &show.Fixture{
		Path: path,
		Name: "Fixture 1",
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{
			{Kind: attribute.KindDimmer}: {
				Kind: show.FixtureChannelFunctionKind{Addresses: []dmx.Address{addr}},
				Min:  value.New(0),
				Max:  value.New(1),
			},
		},
	}
	return patch
}

// testPatchWithDefault is testPatch plus a seeded DefaultMultiverse, as
// patchbuilder.BuildFromShowfile would produce for a fixture whose
// initial channel function defaults to full.
func testPatchWithDefault(t *testing.T) *show.Patch {
	t.Helper()
	patch := testPatch(t)
	patch.DefaultMultiverse.SetValue(dmx.NewAddress(1, 1), 255)
	return patch
}

func TestRequestDmxOutputSeedsFromDefaultMultiverse(t *testing.T) {
	state := newState(testPatchWithDefault(t))

	msg := state.requestDmxOutput()
	bytes, ok := msg.Multiverse.Universes[1]
	if !ok {
		t.Fatal("ResponseDmxOutput snapshot is missing universe 1")
	}
	if bytes[0] != 255 {
		t.Errorf("universe 1 channel 1 = %d, want 255 (unset dimmer falling back to its default)", bytes[0])
	}
}

func TestRequestSetAttributeValuesPreservesUnrelatedDefaults(t *testing.T) {
	patch := testPatchWithDefault(t)
	path2 := show.NewFixturePath(2)
	addr2 := dmx.NewAddress(1, 2)
	patch.Fixtures[path2] = &show.Fixture{
		Path: path2,
		Name: "Fixture 2",
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{
			{Kind: attribute.KindDimmer}: {
				Kind: show.FixtureChannelFunctionKind{Addresses: []dmx.Address{addr2}},
			},
		},
	}
	patch.DefaultMultiverse.SetValue(addr2, 64)

	state := newState(patch)
	values := rpc.NewAttributeValues()
	values.Set(show.NewFixturePath(1), attribute.Attribute{Kind: attribute.KindDimmer}, value.New(0.0))
	state.requestSetAttributeValues(values)

	got := state.multiverseSnapshotBytes(1)
	if got[0] != 0 {
		t.Errorf("universe 1 channel 1 = %d, want 0 (explicitly set to zero)", got[0])
	}
	if got[1] != 64 {
		t.Errorf("universe 1 channel 2 = %d, want 64 (untouched fixture keeps its default)", got[1])
	}
}

func TestRequestShowDataReturnsPatch(t *testing.T) {
	state := newState(testPatch(t))
	msg := state.requestShowData()
	if msg.Type != rpc.TypeResponseState {
		t.Fatalf("Type = %v, want %v", msg.Type, rpc.TypeResponseState)
	}
	if len(msg.Patch.Fixtures) != 1 {
		t.Fatalf("len(Fixtures) = %d, want 1", len(msg.Patch.Fixtures))
	}
}

func TestRequestSetAttributeValuesResolvesIntoMultiverse(t *testing.T) {
	state := newState(testPatch(t))

	values := rpc.NewAttributeValues()
	values.Set(show.NewFixturePath(1), attribute.Attribute{Kind: attribute.KindDimmer}, value.New(1.0))

	ack := state.requestSetAttributeValues(values)
	if ack.Type != rpc.TypeResponseSetAttributeValues {
		t.Fatalf("Type = %v, want %v", ack.Type, rpc.TypeResponseSetAttributeValues)
	}

	got := state.multiverseSnapshotBytes(1)
	if got[0] != 255 {
		t.Errorf("universe 1 channel 1 = %d, want 255 (fully-resolved dimmer)", got[0])
	}
}

func TestRequestDmxOutputSnapshotsResolvedValues(t *testing.T) {
	state := newState(testPatch(t))
	values := rpc.NewAttributeValues()
	values.Set(show.NewFixturePath(1), attribute.Attribute{Kind: attribute.KindDimmer}, value.New(0.5))
	state.requestSetAttributeValues(values)

	msg := state.requestDmxOutput()
	if msg.Type != rpc.TypeResponseDmxOutput {
		t.Fatalf("Type = %v, want %v", msg.Type, rpc.TypeResponseDmxOutput)
	}
	bytes, ok := msg.Multiverse.Universes[1]
	if !ok {
		t.Fatal("ResponseDmxOutput snapshot is missing universe 1")
	}
	if bytes[0] != 128 {
		t.Errorf("universe 1 channel 1 = %d, want 128 (0.5 scaled to a byte)", bytes[0])
	}
}

func TestMultiverseSnapshotBytesReturnsZeroedUniverseWhenAbsent(t *testing.T) {
	state := newState(testPatch(t))
	got := state.multiverseSnapshotBytes(2)
	if len(got) != 512 {
		t.Fatalf("len(bytes) = %d, want 512", len(got))
	}
	for _, b := range got {
		if b != 0 {
			t.Fatal("unregistered universe should snapshot as all zero")
		}
	}
}
