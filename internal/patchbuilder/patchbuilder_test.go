package patchbuilder

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/gdtf"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/showfile"
)

var testFixtureTypeID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// singleDimmerFixtureType builds the simplest possible GDTF fixture
// type: one root geometry, one DMX mode, one physical 1-byte Dimmer
// channel occupying the fixture's first address.
func singleDimmerFixtureType() *gdtf.FixtureType {
	geometry := gdtf.Geometry{GeometryName: "Body"}
	return &gdtf.FixtureType{
		Name:          "Test Fixture",
		FixtureTypeID: testFixtureTypeID,
		Geometries:    []gdtf.Geometry{geometry},
		DMXModes: []gdtf.DmxMode{
			{
				Name:         "Mode1",
				GeometryName: "Body",
				DmxChannels: []gdtf.DmxChannel{
					{
						ChannelName: "Dimmer",
						Geometry:    "Body",
						Offsets:     []int32{1},
						LogicalChannels: []gdtf.LogicalChannel{
							{
								ChannelFunctions: []gdtf.ChannelFunction{
									{
										Name:          "Dimmer",
										AttributeName: "Dimmer",
										DmxFrom:       gdtf.DmxValue{Raw: 0, ByteWidth: 1},
										Default:       gdtf.DmxValue{Raw: 255, ByteWidth: 1},
									},
								},
							},
						},
						InitialFunctionName: "Dimmer",
					},
				},
			},
		},
	}
}

// fixtureTypeWithNonInitialPhysicalChannel builds a GDTF fixture type
// whose Pan channel is physical but has no matching InitialFunction (its
// InitialFunctionName doesn't name any of its channel functions), so it
// never contributes to the built default multiverse. Its address must
// still be collision-checked against other fixtures.
func fixtureTypeWithNonInitialPhysicalChannel() *gdtf.FixtureType {
	geometry := gdtf.Geometry{GeometryName: "Body"}
	return &gdtf.FixtureType{
		Name:          "Test Fixture With Pan",
		FixtureTypeID: testFixtureTypeID,
		Geometries:    []gdtf.Geometry{geometry},
		DMXModes: []gdtf.DmxMode{
			{
				Name:         "Mode1",
				GeometryName: "Body",
				DmxChannels: []gdtf.DmxChannel{
					{
						ChannelName: "Pan",
						Geometry:    "Body",
						Offsets:     []int32{1},
						LogicalChannels: []gdtf.LogicalChannel{
							{
								ChannelFunctions: []gdtf.ChannelFunction{
									{
										Name:          "Pan",
										AttributeName: "Pan",
										DmxFrom:       gdtf.DmxValue{Raw: 0, ByteWidth: 1},
										Default:       gdtf.DmxValue{Raw: 128, ByteWidth: 1},
									},
								},
							},
						},
						// Does not match any channel function's Name, so
						// DmxChannel.InitialFunction() returns nil.
						InitialFunctionName: "NoSuchFunction",
					},
				},
			},
		},
	}
}

func testShowfile() *showfile.Showfile {
	sf := &showfile.Showfile{}
	sf.Patch.Fixtures = []showfile.Fixture{
		{
			ID:      1,
			Label:   "Fixture 1",
			Address: dmx.Address{Universe: 1, Channel: 1},
			Kind:    showfile.FixtureKind{GdtfFixtureTypeID: testFixtureTypeID, GdtfDmxMode: "Mode1"},
		},
	}
	return sf
}

func TestBuildFromShowfileSingleFixture(t *testing.T) {
	sf := testShowfile()
	fixtureTypes := map[string]*gdtf.FixtureType{testFixtureTypeID.String(): singleDimmerFixtureType()}

	patch, err := BuildFromShowfile(sf, fixtureTypes)
	if err != nil {
		t.Fatalf("BuildFromShowfile() error = %v", err)
	}

	path := show.NewFixturePath(1)
	fixture, ok := patch.Fixtures[path]
	if !ok {
		t.Fatalf("built patch is missing fixture at path %v", path)
	}
	if fixture.Name != "Fixture 1" {
		t.Errorf("fixture.Name = %q, want %q", fixture.Name, "Fixture 1")
	}

	cf, ok := fixture.ChannelFunctions[attribute.Attribute{Kind: attribute.KindDimmer}]
	if !ok {
		t.Fatal("fixture is missing its Dimmer channel function")
	}
	if cf.Kind.IsVirtual {
		t.Error("Dimmer channel function should be physical, not virtual")
	}
	if len(cf.Kind.Addresses) != 1 || cf.Kind.Addresses[0] != (dmx.Address{Universe: 1, Channel: 1}) {
		t.Errorf("Dimmer addresses = %+v, want [{1 1}]", cf.Kind.Addresses)
	}

	defaultValue := patch.DefaultMultiverse.GetValue(dmx.Address{Universe: 1, Channel: 1})
	if defaultValue != 255 {
		t.Errorf("default multiverse value = %d, want 255 (the channel's Default)", defaultValue)
	}
}

func TestBuildFromShowfileUnknownFixtureType(t *testing.T) {
	sf := testShowfile()
	_, err := BuildFromShowfile(sf, map[string]*gdtf.FixtureType{})
	if err == nil {
		t.Fatal("expected an error for a fixture type absent from fixtureTypes")
	}
}

func TestBuildFromShowfileUnknownDmxMode(t *testing.T) {
	sf := testShowfile()
	sf.Patch.Fixtures[0].Kind.GdtfDmxMode = "NoSuchMode"
	fixtureTypes := map[string]*gdtf.FixtureType{testFixtureTypeID.String(): singleDimmerFixtureType()}

	_, err := BuildFromShowfile(sf, fixtureTypes)
	if err == nil {
		t.Fatal("expected an error for an unknown DMX mode")
	}
}

func TestBuildFromShowfileDuplicateAddressFails(t *testing.T) {
	sf := testShowfile()
	sf.Patch.Fixtures = append(sf.Patch.Fixtures, showfile.Fixture{
		ID:      2,
		Label:   "Fixture 2",
		Address: dmx.Address{Universe: 1, Channel: 1},
		Kind:    showfile.FixtureKind{GdtfFixtureTypeID: testFixtureTypeID, GdtfDmxMode: "Mode1"},
	})
	fixtureTypes := map[string]*gdtf.FixtureType{testFixtureTypeID.String(): singleDimmerFixtureType()}

	_, err := BuildFromShowfile(sf, fixtureTypes)
	if err == nil {
		t.Fatal("expected an error when two fixtures occupy the same address")
	}
}

func TestBuildFromShowfileDuplicateAddressFailsForNonInitialPhysicalChannel(t *testing.T) {
	sf := &showfile.Showfile{}
	sf.Patch.Fixtures = []showfile.Fixture{
		{
			ID:      1,
			Label:   "Fixture 1",
			Address: dmx.Address{Universe: 1, Channel: 1},
			Kind:    showfile.FixtureKind{GdtfFixtureTypeID: testFixtureTypeID, GdtfDmxMode: "Mode1"},
		},
		{
			ID:      2,
			Label:   "Fixture 2",
			Address: dmx.Address{Universe: 1, Channel: 1},
			Kind:    showfile.FixtureKind{GdtfFixtureTypeID: testFixtureTypeID, GdtfDmxMode: "Mode1"},
		},
	}
	fixtureTypes := map[string]*gdtf.FixtureType{testFixtureTypeID.String(): fixtureTypeWithNonInitialPhysicalChannel()}

	_, err := BuildFromShowfile(sf, fixtureTypes)
	if err == nil {
		t.Fatal("expected an error: both fixtures' Pan channel occupies address {1 1}, even though neither is an InitialFunction")
	}
}
