// Package gdtf provides the plain GDTF descriptor types the patch
// builder consumes: fixture type, DMX mode, geometry tree, channel and
// relation descriptors. Parsing the GDTF XML archive itself is out of
// scope (spec Non-goal); these types describe the shape a GDTF archive
// is expected to already have been decoded into, the way the teacher's
// internal/services/ofl/types.go describes an already-fetched OFL JSON
// document rather than parsing one from scratch.
package gdtf

import "github.com/google/uuid"

// Description is the root of a decoded GDTF file: one or more fixture
// types, keyed by their FixtureTypeID for lookup by the patch builder.
type Description struct {
	FixtureTypes []FixtureType `xml:"FixtureType"`
}

// FixtureType describes a single GDTF fixture type and its DMX modes.
type FixtureType struct {
	Name          string    `xml:"Name,attr"`
	FixtureTypeID uuid.UUID `xml:"FixtureTypeID,attr"`

	DMXModes  []DmxMode `xml:"DMXModes>DMXMode"`
	Geometries []Geometry `xml:"Geometries>Geometry"`
}

// DmxMode returns the mode with the given name, or nil if none matches.
func (ft *FixtureType) DmxMode(name string) *DmxMode {
	for i := range ft.DMXModes {
		if ft.DMXModes[i].Name == name {
			return &ft.DMXModes[i]
		}
	}
	return nil
}

// NestedGeometry searches the fixture type's geometry tree (depth-first)
// for a geometry with the given name, at any depth.
func (ft *FixtureType) NestedGeometry(name string) *Geometry {
	for i := range ft.Geometries {
		if found := ft.Geometries[i].find(name); found != nil {
			return found
		}
	}
	return nil
}

// DmxMode names a DMX personality: a root geometry plus the DMX
// channels and inter-channel relations active for that mode.
type DmxMode struct {
	Name            string     `xml:"Name,attr"`
	GeometryName    string     `xml:"Geometry,attr"`
	DmxChannels     []DmxChannel `xml:"DMXChannels>DMXChannel"`
	Relations       []Relation   `xml:"Relations>Relation"`
}

// Geometry returns the mode's root geometry, looked up by name in the
// owning fixture type's geometry tree.
func (m *DmxMode) Geometry(ft *FixtureType) *Geometry {
	return ft.NestedGeometry(m.GeometryName)
}

// GeometryKind distinguishes a plain geometry node from a reference
// geometry node (one that points at another geometry definition,
// optionally with DMX address offsets applied via Breaks).
type GeometryKind int

const (
	GeometryKindGeneral GeometryKind = iota
	GeometryKindReference
)

// Geometry is a node in a fixture type's geometry tree. Reference
// geometry fields (ReferencedGeometryName, Breaks) are only meaningful
// when Kind is GeometryKindReference.
type Geometry struct {
	Kind GeometryKind

	GeometryName string `xml:"Name,attr"`

	// ReferencedGeometryName is the name of the geometry this reference
	// points at (Kind == GeometryKindReference only).
	ReferencedGeometryName string `xml:"Geometry,attr"`
	// Breaks describes DMX address offsets applied where this reference
	// geometry is instantiated (Kind == GeometryKindReference only).
	Breaks []Break `xml:"Break"`

	Children []Geometry `xml:"Geometry"`
}

// Name returns the geometry's name.
func (g *Geometry) Name() string { return g.GeometryName }

func (g *Geometry) find(name string) *Geometry {
	if g.GeometryName == name {
		return g
	}
	for i := range g.Children {
		if found := g.Children[i].find(name); found != nil {
			return found
		}
	}
	return nil
}

// Break describes a single DMX address offset applied by a reference
// geometry instantiation.
type Break struct {
	DmxOffset DmxValue `xml:"DMXOffset,attr"`
}

// DmxChannel is a single physical DMX channel (or, when Offsets is
// empty, a virtual channel computed from relations) belonging to a
// named geometry.
type DmxChannel struct {
	ChannelName     string `xml:"-"`
	Geometry        string `xml:"Geometry,attr"`
	// Offsets lists the 1-based byte offsets (within the fixture's
	// address space, before the reference-geometry offset is applied)
	// this channel occupies, most-significant first. A nil slice marks
	// a virtual channel.
	Offsets []int32 `xml:"Offset,attr"`

	LogicalChannels []LogicalChannel `xml:"LogicalChannel"`

	// InitialFunctionName names the channel function (by its own Name
	// field) whose default seeds the patch's default multiverse.
	InitialFunctionName string `xml:"InitialFunction,attr"`
}

// Name returns the channel's identifying name, used to match Relation
// master references.
func (c *DmxChannel) Name() string { return c.ChannelName }

// InitialFunction returns the channel function named by
// InitialFunctionName, searching every logical channel, or nil if
// there's no match (or no initial function was specified).
func (c *DmxChannel) InitialFunction() *ChannelFunction {
	if c.InitialFunctionName == "" {
		return nil
	}
	for li := range c.LogicalChannels {
		for fi := range c.LogicalChannels[li].ChannelFunctions {
			cf := &c.LogicalChannels[li].ChannelFunctions[fi]
			if cf.Name == c.InitialFunctionName {
				return cf
			}
		}
	}
	return nil
}

// LogicalChannel groups the channel functions that share a single DMX
// channel's value range.
type LogicalChannel struct {
	ChannelFunctions []ChannelFunction `xml:"ChannelFunction"`
}

// ChannelFunction maps a sub-range of a logical channel's DMX values to
// a single named attribute.
type ChannelFunction struct {
	Name          string   `xml:"Name,attr"`
	AttributeName string   `xml:"Attribute,attr"`
	DmxFrom       DmxValue `xml:"DMXFrom,attr"`
	Default       DmxValue `xml:"Default,attr"`
}

// Attribute returns the channel function's attribute name, or "" if
// none is set. Fixture-type-level attribute definitions (name
// normalization, pretty names) are out of scope; the attribute package
// parses this string directly.
func (cf *ChannelFunction) Attribute() string { return cf.AttributeName }

// RelationType is the operator a Relation applies between a master
// channel and a follower channel function.
type RelationType int

const (
	RelationTypeMultiply RelationType = iota
	RelationTypeOverride
)

// Relation links a master DMX channel to a follower channel function,
// driving the follower's virtual value from the master's resolved
// value.
type Relation struct {
	MasterChannelName   string       `xml:"Master,attr"`
	FollowerFunctionName string      `xml:"Follower,attr"`
	Type                RelationType `xml:"Type,attr"`
}

// Master looks up the relation's master channel within mode.
func (r *Relation) Master(mode *DmxMode) *DmxChannel {
	for i := range mode.DmxChannels {
		if mode.DmxChannels[i].Name() == r.MasterChannelName {
			return &mode.DmxChannels[i]
		}
	}
	return nil
}

// Follower looks up the relation's follower channel function within
// mode, returning the owning channel and the function itself.
func (r *Relation) Follower(mode *DmxMode) (*DmxChannel, *ChannelFunction) {
	for ci := range mode.DmxChannels {
		dc := &mode.DmxChannels[ci]
		for li := range dc.LogicalChannels {
			for fi := range dc.LogicalChannels[li].ChannelFunctions {
				cf := &dc.LogicalChannels[li].ChannelFunctions[fi]
				if cf.Name == r.FollowerFunctionName {
					return dc, cf
				}
			}
		}
	}
	return nil, nil
}

// DmxValue is a GDTF DMX value: a raw integer interpreted against a
// given byte width (1-4 bytes, most-significant byte first).
type DmxValue struct {
	Raw       uint64
	ByteWidth int
}

// Absolute returns the value's raw integer, ignoring byte width -
// used for Break.DmxOffset, which GDTF always expresses as a plain
// 1-based channel offset.
func (v DmxValue) Absolute() uint64 { return v.Raw }
