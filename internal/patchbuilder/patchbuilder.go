// Package patchbuilder builds a show.Patch from a showfile: for every
// patched fixture it walks the GDTF geometry tree for the fixture's DMX
// mode, creates a show.Fixture per geometry node, maps DMX channels to
// physical addresses or virtual relations, and seeds the default
// multiverse from each logical channel's initial channel function.
//
// Grounded on
// original_source/crates/zeevonk/src/server/show_data_builder.rs.
package patchbuilder

import (
	"fmt"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/gdtf"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/showfile"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// BuildFromShowfile constructs a show.Patch from sf: every patched
// fixture's GDTF fixture type and DMX mode are looked up in
// fixtureTypes (keyed by FixtureTypeID, as loaded from the showfile's
// GDTF files directory), and the resulting fixture tree and default
// values are merged into the returned patch.
func BuildFromShowfile(sf *showfile.Showfile, fixtureTypes map[string]*gdtf.FixtureType) (*show.Patch, error) {
	patch := show.NewPatch()

	// seenAddresses tracks every absolute address any Physical channel
	// function of any fixture (root or sub-fixture) writes to, keyed to
	// the root patched fixture that owns it, so two distinct fixtures
	// can never be patched onto the same address.
	seenAddresses := make(map[dmx.Address]show.FixtureId)

	for _, pf := range sf.Patch.Fixtures {
		fixtureType, ok := fixtureTypes[pf.Kind.GdtfFixtureTypeID.String()]
		if !ok {
			return nil, zerr.New(zerr.KindShowfileBuild,
				fmt.Sprintf("fixture type with id %s not found in loaded GDTF files", pf.Kind.GdtfFixtureTypeID))
		}

		dmxMode := fixtureType.DmxMode(pf.Kind.GdtfDmxMode)
		if dmxMode == nil {
			return nil, zerr.New(zerr.KindShowfileBuild,
				fmt.Sprintf("dmx mode %q not found for fixture type %s", pf.Kind.GdtfDmxMode, pf.Kind.GdtfFixtureTypeID))
		}

		builder := newFixtureBuilder(pf.ID, pf.Label, pf.Address, fixtureType, dmxMode)
		builtFixtures, defaults, err := builder.buildFixtureTree()
		if err != nil {
			return nil, zerr.Wrap(zerr.KindShowfileBuild, "failed to build fixture tree", err)
		}

		for _, addr := range physicalAddresses(builtFixtures) {
			if existing, dup := seenAddresses[addr]; dup && existing != pf.ID {
				return nil, zerr.New(zerr.KindShowfileBuild,
					fmt.Sprintf("address %s is occupied by both fixture %s and fixture %s",
						addr, existing, pf.ID))
			}
			seenAddresses[addr] = pf.ID
		}

		for _, f := range builtFixtures {
			patch.Fixtures[f.Path] = f
		}
		for addr, v := range defaults {
			patch.DefaultMultiverse.SetValue(addr, v)
		}
	}

	return patch, nil
}

// physicalAddresses collects every absolute address written by any
// non-virtual channel function across fixtures, deduplicated.
func physicalAddresses(fixtures []*show.Fixture) []dmx.Address {
	seen := make(map[dmx.Address]struct{})
	var addrs []dmx.Address
	for _, f := range fixtures {
		for _, cf := range f.ChannelFunctions {
			if cf.Kind.IsVirtual {
				continue
			}
			for _, addr := range cf.Kind.Addresses {
				if _, ok := seen[addr]; ok {
					continue
				}
				seen[addr] = struct{}{}
				addrs = append(addrs, addr)
			}
		}
	}
	return addrs
}

// channelFunctionID identifies a single GDTF channel function within a
// fixture's geometry tree, for relation-lookup purposes.
type channelFunctionID struct {
	fixturePath        show.FixturePath
	geometry           string
	channelIx          int
	logicalChannelIx   int
	channelFunctionIx  int
}

// fixtureBuilder walks a single patched fixture's geometry tree,
// producing a show.Fixture per geometry node plus the default values
// its physical channel functions seed.
type fixtureBuilder struct {
	rootID  show.FixtureId
	name    string
	address dmx.Address

	fixtureType *gdtf.FixtureType
	dmxMode     *gdtf.DmxMode

	fixtures []*show.Fixture

	// siblingCountStack tracks how many siblings have been created so
	// far at each depth of the geometry tree; the top of the stack
	// corresponds to the children currently being enumerated.
	siblingCountStack []uint32

	channelFunctionMap map[channelFunctionID]show.FixturePath

	unresolvedVirtualChannels []unresolvedVirtual

	defaults map[dmx.Address]dmx.Value
}

type unresolvedVirtual struct {
	id        channelFunctionID
	attribute attribute.Attribute
}

func newFixtureBuilder(rootID show.FixtureId, name string, address dmx.Address, ft *gdtf.FixtureType, mode *gdtf.DmxMode) *fixtureBuilder {
	return &fixtureBuilder{
		rootID:             rootID,
		name:               name,
		address:            address,
		fixtureType:        ft,
		dmxMode:            mode,
		channelFunctionMap: make(map[channelFunctionID]show.FixturePath),
		defaults:           make(map[dmx.Address]dmx.Value),
	}
}

func (b *fixtureBuilder) buildFixtureTree() ([]*show.Fixture, map[dmx.Address]dmx.Value, error) {
	rootGeometry := b.dmxMode.Geometry(b.fixtureType)
	if rootGeometry == nil {
		return nil, nil, zerr.New(zerr.KindShowfileBuild,
			fmt.Sprintf("dmx mode %q has no root geometry", b.dmxMode.Name))
	}

	rootPath := show.NewFixturePath(b.rootID)
	b.fixtures = b.fixturesFromGeometry(rootPath, rootGeometry)

	b.resolveVirtualChannels()

	return b.fixtures, b.defaults, nil
}

func (b *fixtureBuilder) fixturesFromGeometry(path show.FixturePath, geometry *gdtf.Geometry) []*show.Fixture {
	b.siblingCountStack = append(b.siblingCountStack, 0)

	var fixtures []*show.Fixture
	if geometry.Kind == gdtf.GeometryKindReference {
		fixtures = b.fixtureFromReferenceGeometry(path, geometry)
	} else {
		fixtures = b.fixtureFromGeometry(path, geometry)
	}

	b.siblingCountStack = b.siblingCountStack[:len(b.siblingCountStack)-1]
	return fixtures
}

func (b *fixtureBuilder) fixtureFromGeometry(path show.FixturePath, geometry *gdtf.Geometry) []*show.Fixture {
	name := geometry.Name()
	if path.Len() == 1 {
		name = b.name
	}
	return b.createSubFixture(path, name, geometry.Name(), geometry.Name(), 0)
}

func (b *fixtureBuilder) fixtureFromReferenceGeometry(path show.FixturePath, ref *gdtf.Geometry) []*show.Fixture {
	offset := int32(0)
	if len(ref.Breaks) > 0 {
		offset = int32(ref.Breaks[0].DmxOffset.Absolute()) - 1
	}
	return b.createSubFixture(path, ref.Name(), ref.Name(), ref.ReferencedGeometryName, offset)
}

func (b *fixtureBuilder) createSubFixture(path show.FixturePath, name, geometryName, referencedGeometryName string, addressOffset int32) []*show.Fixture {
	referencedGeometry := b.fixtureType.NestedGeometry(referencedGeometryName)
	if referencedGeometry == nil {
		return nil
	}

	subFixtures := b.collectChildFixtures(path, referencedGeometry)
	subFixturePaths := collectDirectSubPaths(path, subFixtures)

	channelFunctions := b.createChannelFunctions(path, geometryName, referencedGeometry.Name(), addressOffset)

	fixture := &show.Fixture{
		Path:              path,
		RootBaseAddress:   b.address,
		Name:              name,
		GdtfFixtureTypeID: b.fixtureType.FixtureTypeID,
		GdtfDmxMode:       b.dmxMode.Name,
		ChannelFunctions:  channelFunctions,
		SubFixturePaths:   subFixturePaths,
	}

	fixtures := make([]*show.Fixture, 0, 1+len(subFixtures))
	fixtures = append(fixtures, fixture)
	fixtures = append(fixtures, subFixtures...)
	return fixtures
}

func (b *fixtureBuilder) collectChildFixtures(path show.FixturePath, geometry *gdtf.Geometry) []*show.Fixture {
	var subFixtures []*show.Fixture

	for i := range geometry.Children {
		child := &geometry.Children[i]

		siblingCount := b.siblingCountStack[len(b.siblingCountStack)-1]
		childID, err := show.NewFixtureId(siblingCount + 1)
		if err != nil {
			continue
		}
		childPath := path.ExtendedWith(childID)

		fixturesForChild := b.fixturesFromGeometry(childPath, child)
		if len(fixturesForChild) == 0 {
			continue
		}

		parentFixture := fixturesForChild[0]
		if len(parentFixture.ChannelFunctions) == 0 && len(parentFixture.SubFixturePaths) == 0 {
			continue
		}

		b.siblingCountStack[len(b.siblingCountStack)-1]++
		subFixtures = append(subFixtures, fixturesForChild...)
	}

	return subFixtures
}

func collectDirectSubPaths(path show.FixturePath, subFixtures []*show.Fixture) []show.FixturePath {
	var direct []show.FixturePath
	for _, f := range subFixtures {
		if f.Path.Len() == path.Len()+1 {
			direct = append(direct, f.Path)
		}
	}
	return direct
}

func (b *fixtureBuilder) attributeFromChannelFunction(cf *gdtf.ChannelFunction) (attribute.Attribute, bool) {
	name := cf.Attribute()
	if name == "" {
		return attribute.Attribute{}, false
	}
	return attribute.ParseAttribute(name), true
}

func (b *fixtureBuilder) createChannelFunctions(path show.FixturePath, geometryName, referencedGeometryName string, addressOffset int32) map[attribute.Attribute]show.FixtureChannelFunction {
	channelFunctions := make(map[attribute.Attribute]show.FixtureChannelFunction)

	for cIx := range b.dmxMode.DmxChannels {
		dmxChannel := &b.dmxMode.DmxChannels[cIx]
		if dmxChannel.Geometry != referencedGeometryName {
			continue
		}

		for lcIx := range dmxChannel.LogicalChannels {
			logicalChannel := &dmxChannel.LogicalChannels[lcIx]

			// Filter out NoFeature channel functions; they interfere
			// with computing DMX ranges.
			type filtered struct {
				origIx int
				cf     *gdtf.ChannelFunction
			}
			var kept []filtered
			for fi := range logicalChannel.ChannelFunctions {
				cf := &logicalChannel.ChannelFunctions[fi]
				if cf.Attribute() == "NoFeature" {
					continue
				}
				kept = append(kept, filtered{origIx: fi, cf: cf})
			}

			for i, entry := range kept {
				from := value.FromRaw(entry.cf.DmxFrom.Raw, max(entry.cf.DmxFrom.ByteWidth, 1))
				to := value.MaxValue
				if i+1 < len(kept) {
					to = value.FromRaw(kept[i+1].cf.DmxFrom.Raw, max(kept[i+1].cf.DmxFrom.ByteWidth, 1))
				}

				attr, ok := b.attributeFromChannelFunction(entry.cf)
				if !ok {
					continue
				}

				cfID := channelFunctionID{
					fixturePath:       path,
					geometry:          geometryName,
					channelIx:         cIx,
					logicalChannelIx:  lcIx,
					channelFunctionIx: entry.origIx,
				}

				kind := b.makeChannelFunctionKind(dmxChannel, attr, cfID, addressOffset)

				def := value.FromRaw(entry.cf.Default.Raw, max(entry.cf.Default.ByteWidth, 1))

				if initial := dmxChannel.InitialFunction(); initial != nil && initial == entry.cf {
					if !kind.IsVirtual {
						for _, av := range def.ToAddressValues(kind.Addresses) {
							b.defaults[av.Address] = av.Value
						}
					}
				}

				channelFunctions[attr] = show.FixtureChannelFunction{Kind: kind, Min: from, Max: to, Default: def}
				b.channelFunctionMap[cfID] = path
			}
		}
	}

	return channelFunctions
}

func (b *fixtureBuilder) makeChannelFunctionKind(dmxChannel *gdtf.DmxChannel, attr attribute.Attribute, cfID channelFunctionID, addressOffset int32) show.FixtureChannelFunctionKind {
	if len(dmxChannel.Offsets) > 0 {
		addresses := make([]dmx.Address, len(dmxChannel.Offsets))
		for i, o := range dmxChannel.Offsets {
			addr, err := b.address.WithChannelOffset(addressOffset + o - 1)
			if err != nil {
				continue
			}
			addresses[i] = addr
		}
		return show.FixtureChannelFunctionKind{Addresses: addresses}
	}

	b.unresolvedVirtualChannels = append(b.unresolvedVirtualChannels, unresolvedVirtual{id: cfID, attribute: attr})
	return show.FixtureChannelFunctionKind{IsVirtual: true, Relations: []show.Relation{}}
}

func (b *fixtureBuilder) resolveVirtualChannels() {
	for _, uv := range b.unresolvedVirtualChannels {
		if uv.id.channelIx >= len(b.dmxMode.DmxChannels) {
			continue
		}
		dmxChannel := &b.dmxMode.DmxChannels[uv.id.channelIx]

		relations := b.relationsForDmxChannel(uv.id.geometry, dmxChannel)

		var fixture *show.Fixture
		for _, f := range b.fixtures {
			if f.Path == uv.id.fixturePath {
				fixture = f
				break
			}
		}
		if fixture == nil {
			continue
		}

		cf, ok := fixture.ChannelFunctions[uv.attribute]
		if !ok {
			continue
		}
		cf.Kind = show.FixtureChannelFunctionKind{IsVirtual: true, Relations: relations}
		fixture.ChannelFunctions[uv.attribute] = cf
	}
}

func (b *fixtureBuilder) relationsForDmxChannel(geometryName string, dmxChannel *gdtf.DmxChannel) []show.Relation {
	var relations []show.Relation

	for i := range b.dmxMode.Relations {
		rel := &b.dmxMode.Relations[i]
		master := rel.Master(b.dmxMode)
		if master == nil || master.Name() != dmxChannel.Name() {
			continue
		}

		_, followerCF := rel.Follower(b.dmxMode)
		if followerCF == nil {
			continue
		}

		var kind show.RelationKind
		switch rel.Type {
		case gdtf.RelationTypeMultiply:
			kind = show.RelationKindMultiply
		case gdtf.RelationTypeOverride:
			kind = show.RelationKindOverride
		}

		fixturePath, ok := b.fixturePathForChannelFunction(geometryName, followerCF)
		if !ok {
			continue
		}

		attr, ok := b.attributeFromChannelFunction(followerCF)
		if !ok {
			continue
		}

		relations = append(relations, show.Relation{Kind: kind, FixturePath: fixturePath, Attribute: attr})
	}

	return relations
}

func (b *fixtureBuilder) fixturePathForChannelFunction(geometryName string, target *gdtf.ChannelFunction) (show.FixturePath, bool) {
	for cIx := range b.dmxMode.DmxChannels {
		dc := &b.dmxMode.DmxChannels[cIx]
		for lcIx := range dc.LogicalChannels {
			lc := &dc.LogicalChannels[lcIx]
			for cfIx := range lc.ChannelFunctions {
				if &lc.ChannelFunctions[cfIx] != target {
					continue
				}
				id := channelFunctionID{geometry: geometryName, channelIx: cIx, logicalChannelIx: lcIx, channelFunctionIx: cfIx}
				for candidate, path := range b.channelFunctionMap {
					if candidate.geometry == id.geometry && candidate.channelIx == id.channelIx &&
						candidate.logicalChannelIx == id.logicalChannelIx && candidate.channelFunctionIx == id.channelFunctionIx {
						return path, true
					}
				}
			}
		}
	}
	return show.FixturePath{}, false
}
