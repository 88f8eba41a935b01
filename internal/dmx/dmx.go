// Package dmx implements the DMX512 address space: universes, channels,
// addresses, and the sparse multiverse store.
//
// Grounded on original_source/src/core/dmx/mod.rs, translated into Go's
// value-type idiom (no Deref-style wrapper types; plain typed integers
// with validating constructors).
package dmx

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// Channel is a DMX channel number in [1, 512].
type Channel uint16

// MinChannel and MaxChannel bound valid Channel values.
const (
	MinChannel Channel = 1
	MaxChannel Channel = 512
)

// NewChannel validates and constructs a Channel.
func NewChannel(n uint16) (Channel, error) {
	if n < uint16(MinChannel) || n > uint16(MaxChannel) {
		return 0, zerr.New(zerr.KindAddressArithmetic, fmt.Sprintf("invalid channel: %d", n))
	}
	return Channel(n), nil
}

func (c Channel) String() string { return strconv.Itoa(int(c)) }

// ParseChannel parses a Channel from its decimal string form.
func ParseChannel(s string) (Channel, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, zerr.Wrap(zerr.KindAddressArithmetic, fmt.Sprintf("parse channel %q", s), err)
	}
	return NewChannel(uint16(n))
}

// UniverseID identifies a DMX universe; must be nonzero.
type UniverseID uint16

// MinUniverseID and MaxUniverseID bound valid UniverseID values.
const (
	MinUniverseID UniverseID = 1
	MaxUniverseID UniverseID = 65535
)

// NewUniverseID validates and constructs a UniverseID.
func NewUniverseID(n uint16) (UniverseID, error) {
	if n == 0 {
		return 0, zerr.New(zerr.KindAddressArithmetic, "universe id must be nonzero")
	}
	return UniverseID(n), nil
}

func (u UniverseID) String() string { return strconv.Itoa(int(u)) }

// ParseUniverseID parses a UniverseID from its decimal string form.
func ParseUniverseID(s string) (UniverseID, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, zerr.Wrap(zerr.KindAddressArithmetic, fmt.Sprintf("parse universe id %q", s), err)
	}
	return NewUniverseID(uint16(n))
}

// Value is an 8-bit DMX slot value.
type Value uint8

// Address is a (UniverseID, Channel) pair with a total, universe-major
// order.
type Address struct {
	Universe UniverseID
	Channel  Channel
}

// NewAddress constructs an Address from a universe and channel.
func NewAddress(universe UniverseID, channel Channel) Address {
	return Address{Universe: universe, Channel: channel}
}

// AddressFromAbsolute converts a 1-based absolute address (universe-major,
// 512 channels per universe) into an Address.
func AddressFromAbsolute(absolute uint32) (Address, error) {
	if absolute == 0 {
		return Address{}, zerr.New(zerr.KindAddressArithmetic, "absolute address must be nonzero")
	}
	universeIdx := (absolute - 1) / 512
	channelNum := (absolute-1)%512 + 1
	universe, err := NewUniverseID(uint16(1 + universeIdx))
	if err != nil {
		return Address{}, err
	}
	channel, err := NewChannel(uint16(channelNum))
	if err != nil {
		return Address{}, err
	}
	return Address{Universe: universe, Channel: channel}, nil
}

// ToAbsolute converts the Address to its 1-based absolute address.
func (a Address) ToAbsolute() uint32 {
	return uint32(a.Universe-1)*512 + uint32(a.Channel)
}

// WithChannelOffset returns a new Address reached by adding a signed
// channel offset, crossing universe boundaries as needed.
func (a Address) WithChannelOffset(offset int32) (Address, error) {
	currentAbs := int64(a.Universe-1)*512 + int64(a.Channel-1)
	total := currentAbs + int64(offset)

	universeIdx := floorDiv(total, 512)
	newChannelZero := uint16(floorMod(total, 512))

	targetUniverseID := 1 + universeIdx
	if targetUniverseID < 1 || targetUniverseID > int64(MaxUniverseID) {
		return Address{}, zerr.New(zerr.KindAddressArithmetic,
			fmt.Sprintf("invalid universe id: %d", targetUniverseID))
	}

	channel, err := NewChannel(newChannelZero + 1)
	if err != nil {
		return Address{}, err
	}
	return Address{Universe: UniverseID(targetUniverseID), Channel: channel}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func (a Address) String() string {
	return fmt.Sprintf("%s.%s", a.Universe, a.Channel)
}

// ParseAddress parses an Address from its "{universe}.{channel}" string
// form.
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Address{}, zerr.New(zerr.KindAddressArithmetic, fmt.Sprintf("parse address %q", s))
	}
	universe, err := ParseUniverseID(parts[0])
	if err != nil {
		return Address{}, err
	}
	channel, err := ParseChannel(parts[1])
	if err != nil {
		return Address{}, err
	}
	return Address{Universe: universe, Channel: channel}, nil
}

// Less reports whether a sorts before other (universe-major, then
// channel).
func (a Address) Less(other Address) bool {
	if a.Universe != other.Universe {
		return a.Universe < other.Universe
	}
	return a.Channel < other.Channel
}

// Universe is a fixed 512-slot DMX universe buffer.
type Universe struct {
	values [512]Value
}

// NewUniverse returns a universe with all slots zeroed.
func NewUniverse() *Universe {
	return &Universe{}
}

// GetValue returns the value at the given channel.
func (u *Universe) GetValue(c Channel) Value {
	return u.values[c-1]
}

// SetValue sets the value at the given channel.
func (u *Universe) SetValue(c Channel, v Value) {
	u.values[c-1] = v
}

// Values returns the underlying 512-slot buffer (index 0 = channel 1).
func (u *Universe) Values() [512]Value {
	return u.values
}

// Clear zeroes every slot.
func (u *Universe) Clear() {
	u.values = [512]Value{}
}

// Bytes returns a copy of the universe as a plain byte slice, in channel
// order.
func (u *Universe) Bytes() []byte {
	out := make([]byte, 512)
	for i, v := range u.values {
		out[i] = byte(v)
	}
	return out
}

// Clone returns an independent copy of the universe.
func (u *Universe) Clone() *Universe {
	clone := *u
	return &clone
}

// Multiverse is a sparse mapping of UniverseID to Universe. Writing to a
// missing universe creates it. All methods are safe for concurrent use.
type Multiverse struct {
	mu        sync.RWMutex
	universes map[UniverseID]*Universe
}

// NewMultiverse returns an empty Multiverse.
func NewMultiverse() *Multiverse {
	return &Multiverse{universes: make(map[UniverseID]*Universe)}
}

// HasUniverse reports whether a universe with the given id exists.
func (m *Multiverse) HasUniverse(id UniverseID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.universes[id]
	return ok
}

// CreateUniverse registers a universe under id, replacing any existing
// one.
func (m *Multiverse) CreateUniverse(id UniverseID, u *Universe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.universes[id] = u
}

// RemoveUniverse removes and returns the universe for id, if present.
func (m *Multiverse) RemoveUniverse(id UniverseID) (*Universe, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.universes[id]
	delete(m.universes, id)
	return u, ok
}

// Clear zeroes every slot of every universe.
func (m *Multiverse) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.universes {
		u.Clear()
	}
}

// Universe returns the universe for id, or nil if absent.
func (m *Multiverse) Universe(id UniverseID) *Universe {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.universes[id]
}

// UniverseIDs returns every registered universe id, in no particular
// order.
func (m *Multiverse) UniverseIDs() []UniverseID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]UniverseID, 0, len(m.universes))
	for id := range m.universes {
		ids = append(ids, id)
	}
	return ids
}

// SetValue sets the value at address, creating the target universe if
// necessary.
func (m *Multiverse) SetValue(addr Address, v Value) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.universes[addr.Universe]
	if !ok {
		u = NewUniverse()
		m.universes[addr.Universe] = u
	}
	u.SetValue(addr.Channel, v)
}

// GetValue returns the value at address, or 0 if the universe doesn't
// exist.
func (m *Multiverse) GetValue(addr Address) Value {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.universes[addr.Universe]
	if !ok {
		return 0
	}
	return u.GetValue(addr.Channel)
}

// Clone returns an independent deep copy of the multiverse.
func (m *Multiverse) Clone() *Multiverse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	clone := NewMultiverse()
	for id, u := range m.universes {
		clone.universes[id] = u.Clone()
	}
	return clone
}

// CopyFrom replaces m's contents with a clone of src's universes.
func (m *Multiverse) CopyFrom(src *Multiverse) {
	src.mu.RLock()
	snapshot := make(map[UniverseID]*Universe, len(src.universes))
	for id, u := range src.universes {
		snapshot[id] = u.Clone()
	}
	src.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.universes = snapshot
}
