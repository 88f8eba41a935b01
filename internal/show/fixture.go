// Package show holds the built (post-patch-build) fixture tree: fixture
// instances, their channel functions, and the DMX multiverse defaults
// they seed. It's the output of internal/patchbuilder and the input to
// internal/resolver.
//
// Grounded on original_source/crates/zeevonk/src/show/fixture.rs and
// state/patch.rs.
package show

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// FixtureId is a non-zero fixture identifier.
type FixtureId uint32

// NewFixtureId validates and constructs a FixtureId.
func NewFixtureId(id uint32) (FixtureId, error) {
	if id == 0 {
		return 0, zerr.New(zerr.KindShowfileBuild, "fixture id must be nonzero")
	}
	return FixtureId(id), nil
}

func (id FixtureId) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseFixtureId parses a FixtureId from its decimal string form.
func ParseFixtureId(s string) (FixtureId, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, zerr.Wrap(zerr.KindShowfileBuild, fmt.Sprintf("parse fixture id %q", s), err)
	}
	return NewFixtureId(uint32(n))
}

// Offset returns a new FixtureId shifted by a signed offset.
func (id FixtureId) Offset(offset int32) (FixtureId, error) {
	return NewFixtureId(uint32(int64(id) + int64(offset)))
}

// MaxPathLen is the maximum number of FixtureIds a FixturePath can hold.
const MaxPathLen = 8

// FixturePath is an ordered, bounded path of FixtureIds: the first
// element is the root fixture, and any remaining elements identify
// nested sub-fixtures. Comparable with ==.
//
// Go has no const-generic fixed-length array parametrized by the
// spec's own MaxPathLen, so this uses a plain [8]FixtureId array plus
// a length field - the same fixed-capacity representation the source
// uses, just without a generic size parameter.
type FixturePath struct {
	ids [MaxPathLen]FixtureId
	len uint8
}

// NewFixturePath creates a path containing only the given root fixture.
func NewFixturePath(root FixtureId) FixturePath {
	var p FixturePath
	p.ids[0] = root
	p.len = 1
	return p
}

// Len returns the number of fixtures in the path.
func (p FixturePath) Len() int { return int(p.len) }

// IsRootFixture reports whether the path contains only the root.
func (p FixturePath) IsRootFixture() bool { return p.len == 1 }

// Root returns the path's root FixtureId.
func (p FixturePath) Root() FixtureId { return p.ids[0] }

// Last returns the path's final FixtureId.
func (p FixturePath) Last() FixtureId { return p.ids[p.len-1] }

// AsSlice returns the path's elements as a slice.
func (p FixturePath) AsSlice() []FixtureId { return p.ids[:p.len] }

// Push appends id to the path. Panics if the path is already at
// MaxPathLen, mirroring the source's capacity assertion.
func (p *FixturePath) Push(id FixtureId) {
	if int(p.len) >= MaxPathLen {
		panic(fmt.Sprintf("FixturePath capacity exceeded (max %d)", MaxPathLen))
	}
	p.ids[p.len] = id
	p.len++
}

// ExtendedWith returns a copy of p with part appended.
func (p FixturePath) ExtendedWith(part FixtureId) FixturePath {
	p.Push(part)
	return p
}

// Contains reports whether p has other as a prefix.
func (p FixturePath) Contains(other FixturePath) bool {
	if other.len > p.len {
		return false
	}
	for i := uint8(0); i < other.len; i++ {
		if p.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}

// Less reports whether p sorts before other: element-by-element, then
// by length.
func (p FixturePath) Less(other FixturePath) bool {
	n := p.len
	if other.len < n {
		n = other.len
	}
	for i := uint8(0); i < n; i++ {
		if p.ids[i] != other.ids[i] {
			return p.ids[i] < other.ids[i]
		}
	}
	return p.len < other.len
}

func (p FixturePath) String() string {
	var b strings.Builder
	for i, id := range p.AsSlice() {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(id.String())
	}
	return b.String()
}

// ParseFixturePath parses a "{id}.{id}..." path string.
func ParseFixturePath(s string) (FixturePath, error) {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > MaxPathLen {
		return FixturePath{}, zerr.New(zerr.KindShowfileBuild,
			fmt.Sprintf("fixture path has too many parts (max %d)", MaxPathLen))
	}
	var p FixturePath
	for _, part := range parts {
		id, err := ParseFixtureId(part)
		if err != nil {
			return FixturePath{}, err
		}
		p.ids[p.len] = id
		p.len++
	}
	return p, nil
}

// MarshalMsgpack renders the path as its "{id}.{id}..." string form,
// mirroring the source's custom serde impl for FixturePath (a plain
// array-of-ids struct would otherwise serialize its private fields).
func (p FixturePath) MarshalMsgpack() ([]byte, error) {
	return msgpack.Marshal(p.String())
}

// UnmarshalMsgpack parses the path from its string form.
func (p *FixturePath) UnmarshalMsgpack(b []byte) error {
	var s string
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseFixturePath(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RelationKind is the operator used to combine a master's resolved
// value into a follower's virtual channel function.
type RelationKind int

const (
	RelationKindMultiply RelationKind = iota
	RelationKindOverride
)

// Relation describes how a virtual channel function derives its value
// from another fixture's attribute.
type Relation struct {
	Kind        RelationKind
	FixturePath FixturePath
	Attribute   attribute.Attribute
}

// FixtureChannelFunctionKind distinguishes a physically addressed
// channel function from one computed virtually via relations.
type FixtureChannelFunctionKind struct {
	// Addresses is set (non-nil) for a physical channel function.
	Addresses []dmx.Address
	// Relations is set (possibly empty, but IsVirtual true) for a
	// virtual channel function.
	Relations []Relation
	IsVirtual bool
}

// FixtureChannelFunction describes how a fixture attribute maps to DMX
// values: its addressing (physical or virtual) and its value range.
type FixtureChannelFunction struct {
	Kind    FixtureChannelFunctionKind
	Min     value.ClampedValue
	Max     value.ClampedValue
	Default value.ClampedValue
}

// Fixture is a single node of a built fixture tree (the root fixture or
// one of its sub-fixtures).
type Fixture struct {
	Path            FixturePath
	RootBaseAddress dmx.Address
	Name            string

	GdtfFixtureTypeID uuid.UUID
	GdtfDmxMode       string

	ChannelFunctions map[attribute.Attribute]FixtureChannelFunction
	SubFixturePaths  []FixturePath
}
