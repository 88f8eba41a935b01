// Package sacn implements the wire layer of E1.31 (sACN): the Root
// Layer, Data/Synchronization/Universe-Discovery framing PDUs, and the
// DMP layer that carries DMX slot data, plus a paced UDP Source that
// sends them.
//
// Grounded on original_source/src/server/sacn/packet/{mod,root,data,
// sync,discovery}.rs, translated from the source's trait-dispatched
// Pdu enum into a kind-tagged struct (Go has no enum-with-payload), and
// on _examples/gopatchy-artmap/sacn/protocol.go for the
// encoding/binary fixed-layout framing idiom also used by the teacher's
// pkg/artnet/packet.go.
package sacn

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// DefaultPort is the standard E1.31 UDP port.
const DefaultPort = 5568

// MaxUniverseSize is the number of DMX slots in a universe.
const MaxUniverseSize = 512

var preambleBytes = [16]byte{
	0x00, 0x10, // RLP Preamble Size
	0x00, 0x00, // RLP Postamble Size
	0x41, 0x53, 0x43, 0x2d, 0x45, 0x31, 0x2e, 0x31, 0x37, 0x00, 0x00, 0x00, // ACN Packet Identifier
}

const minRootLayerSize = 38 // preamble(16) + flags&length(2) + vector(4) + cid(16)

var (
	rootVector         = [4]byte{0x00, 0x00, 0x00, 0x04}
	rootVectorExtended = [4]byte{0x00, 0x00, 0x00, 0x08}

	dataFramingVector      = [4]byte{0x00, 0x00, 0x00, 0x02}
	syncFramingVector      = [4]byte{0x00, 0x00, 0x00, 0x01}
	discoveryFramingVector = [4]byte{0x00, 0x00, 0x00, 0x02}
	universeDiscoveryVector = [4]byte{0x00, 0x00, 0x00, 0x01}
)

const (
	dmpVector                 = 0x02
	dmpAddressTypeAndDataType = 0xa1
)

const (
	previewDataBit          = 0x80
	streamTerminatedBit     = 0x40
	forceSynchronizationBit = 0x20
)

// ComponentIdentifier is a source's unique 16-byte CID.
type ComponentIdentifier [16]byte

// NewComponentIdentifier returns a random v4-UUID-derived CID.
func NewComponentIdentifier() ComponentIdentifier {
	var cid ComponentIdentifier
	copy(cid[:], uuid.New()[:])
	return cid
}

func (c ComponentIdentifier) String() string { return uuid.UUID(c).String() }

// flagsAndLength packs an ACN PDU length into its flags-and-length
// field: the top 4 bits are always 0x7, the low 12 bits are the length.
func flagsAndLength(length int) uint16 {
	return 0x7<<12 | uint16(length&0xFFF)
}

func putUint16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

func sourceNameBytes(name string) ([64]byte, error) {
	var out [64]byte
	if len(name) > 64 {
		return out, zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("source name %q exceeds 64 bytes", name))
	}
	copy(out[:], name)
	return out, nil
}

func sourceNameFromBytes(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

// Dmp is the DMP (Device Management Protocol) layer of a Data Packet:
// a start code slot followed by up to 512 DMX data slots.
type Dmp struct {
	PropertyValues []byte
}

// NewDmp builds a Dmp layer from a start code and DMX data slots.
func NewDmp(startCode byte, slots []byte) Dmp {
	values := make([]byte, 0, 1+len(slots))
	values = append(values, startCode)
	values = append(values, slots...)
	return Dmp{PropertyValues: values}
}

func (d Dmp) size() int { return 10 + len(d.PropertyValues) }

func (d Dmp) encode() []byte {
	buf := make([]byte, 0, d.size())
	buf = putUint16(buf, flagsAndLength(d.size()))
	buf = append(buf, dmpVector, dmpAddressTypeAndDataType)
	buf = append(buf, 0x00, 0x00) // first property address
	buf = append(buf, 0x00, 0x01) // address increment
	buf = putUint16(buf, uint16(len(d.PropertyValues)))
	buf = append(buf, d.PropertyValues...)
	return buf
}

func decodeDmp(b []byte) (Dmp, error) {
	if len(b) < 10 {
		return Dmp{}, zerr.New(zerr.KindProtocolDecode, "DMP layer too short")
	}
	if b[2] != dmpVector {
		return Dmp{}, zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("invalid DMP vector: %#x", b[2]))
	}
	if b[3] != dmpAddressTypeAndDataType {
		return Dmp{}, zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("invalid DMP address/data type: %#x", b[3]))
	}
	count := int(binary.BigEndian.Uint16(b[8:10]))
	if len(b) < 10+count {
		return Dmp{}, zerr.New(zerr.KindProtocolDecode, "DMP property values truncated")
	}
	return Dmp{PropertyValues: append([]byte(nil), b[10:10+count]...)}, nil
}

// DataFraming is the Data Packet's Framing Layer: source identity,
// priority, sequencing, and the DMP payload.
type DataFraming struct {
	SourceName             string
	Priority               uint8
	SynchronizationAddress uint16
	SequenceNumber         uint8
	PreviewData            bool
	StreamTerminated       bool
	ForceSynchronization   bool
	Universe               uint16
	Dmp                    Dmp
}

func (d DataFraming) options() byte {
	var o byte
	if d.PreviewData {
		o |= previewDataBit
	}
	if d.StreamTerminated {
		o |= streamTerminatedBit
	}
	if d.ForceSynchronization {
		o |= forceSynchronizationBit
	}
	return o
}

func (d DataFraming) size() int { return 77 + d.Dmp.size() }

func (d DataFraming) encode() ([]byte, error) {
	if d.Priority >= 200 {
		return nil, zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("invalid sACN priority: %d", d.Priority))
	}
	name, err := sourceNameBytes(d.SourceName)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, d.size())
	buf = putUint16(buf, flagsAndLength(d.size()))
	buf = append(buf, dataFramingVector[:]...)
	buf = append(buf, name[:]...)
	buf = append(buf, d.Priority)
	buf = putUint16(buf, d.SynchronizationAddress)
	buf = append(buf, d.SequenceNumber)
	buf = append(buf, d.options())
	buf = putUint16(buf, d.Universe)
	buf = append(buf, d.Dmp.encode()...)
	return buf, nil
}

func decodeDataFraming(b []byte) (DataFraming, error) {
	if len(b) < 77 {
		return DataFraming{}, zerr.New(zerr.KindProtocolDecode, "data framing layer too short")
	}
	var vector [4]byte
	copy(vector[:], b[2:6])
	if vector != dataFramingVector {
		return DataFraming{}, zerr.New(zerr.KindProtocolDecode, "invalid data framing vector")
	}
	options := b[74]
	dmp, err := decodeDmp(b[77:])
	if err != nil {
		return DataFraming{}, err
	}
	return DataFraming{
		SourceName:             sourceNameFromBytes(b[6:70]),
		Priority:               b[70],
		SynchronizationAddress: binary.BigEndian.Uint16(b[71:73]),
		SequenceNumber:         b[73],
		PreviewData:            options&previewDataBit != 0,
		StreamTerminated:       options&streamTerminatedBit != 0,
		ForceSynchronization:   options&forceSynchronizationBit != 0,
		Universe:               binary.BigEndian.Uint16(b[75:77]),
		Dmp:                    dmp,
	}, nil
}

// SyncFraming is the Synchronization Packet's Framing Layer.
type SyncFraming struct {
	SequenceNumber         uint8
	SynchronizationAddress uint16
}

func (s SyncFraming) size() int { return 11 }

func (s SyncFraming) encode() []byte {
	buf := make([]byte, 0, s.size())
	buf = putUint16(buf, flagsAndLength(s.size()))
	buf = append(buf, syncFramingVector[:]...)
	buf = append(buf, s.SequenceNumber)
	buf = putUint16(buf, s.SynchronizationAddress)
	buf = append(buf, 0x00, 0x00)
	return buf
}

func decodeSyncFraming(b []byte) (SyncFraming, error) {
	if len(b) < 9 {
		return SyncFraming{}, zerr.New(zerr.KindProtocolDecode, "sync framing layer too short")
	}
	var vector [4]byte
	copy(vector[:], b[2:6])
	if vector != syncFramingVector {
		return SyncFraming{}, zerr.New(zerr.KindProtocolDecode, "invalid sync framing vector")
	}
	return SyncFraming{
		SequenceNumber:         b[6],
		SynchronizationAddress: binary.BigEndian.Uint16(b[7:9]),
	}, nil
}

// UniverseDiscovery is the Universe Discovery Layer: one page of a
// source's sorted, advertised universe list.
type UniverseDiscovery struct {
	Page      uint8
	Last      uint8
	Universes []uint16
}

// NewUniverseDiscovery builds a page, sorting and truncating universes
// to the 512-entry-per-page limit.
func NewUniverseDiscovery(page, last uint8, universes []uint16) UniverseDiscovery {
	list := append([]uint16(nil), universes...)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	if len(list) > 512 {
		list = list[:512]
	}
	return UniverseDiscovery{Page: page, Last: last, Universes: list}
}

func (u UniverseDiscovery) size() int { return 8 + len(u.Universes)*2 }

func (u UniverseDiscovery) encode() []byte {
	buf := make([]byte, 0, u.size())
	buf = putUint16(buf, flagsAndLength(u.size()))
	buf = append(buf, universeDiscoveryVector[:]...)
	buf = append(buf, u.Page, u.Last)
	for _, universe := range u.Universes {
		buf = putUint16(buf, universe)
	}
	return buf
}

func decodeUniverseDiscovery(b []byte) (UniverseDiscovery, error) {
	if len(b) < 8 {
		return UniverseDiscovery{}, zerr.New(zerr.KindProtocolDecode, "universe discovery layer too short")
	}
	var vector [4]byte
	copy(vector[:], b[2:6])
	if vector != universeDiscoveryVector {
		return UniverseDiscovery{}, zerr.New(zerr.KindProtocolDecode, "invalid universe discovery vector")
	}
	rest := b[8:]
	universes := make([]uint16, 0, len(rest)/2)
	for i := 0; i+1 < len(rest); i += 2 {
		universes = append(universes, binary.BigEndian.Uint16(rest[i:i+2]))
	}
	return UniverseDiscovery{Page: b[6], Last: b[7], Universes: universes}, nil
}

// DiscoveryFraming is the Universe Discovery Packet's Framing Layer.
type DiscoveryFraming struct {
	SourceName        string
	UniverseDiscovery UniverseDiscovery
}

func (d DiscoveryFraming) size() int { return 74 + d.UniverseDiscovery.size() }

func (d DiscoveryFraming) encode() ([]byte, error) {
	name, err := sourceNameBytes(d.SourceName)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, d.size())
	buf = putUint16(buf, flagsAndLength(d.size()))
	buf = append(buf, discoveryFramingVector[:]...)
	buf = append(buf, name[:]...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)
	buf = append(buf, d.UniverseDiscovery.encode()...)
	return buf, nil
}

func decodeDiscoveryFraming(b []byte) (DiscoveryFraming, error) {
	if len(b) < 74 {
		return DiscoveryFraming{}, zerr.New(zerr.KindProtocolDecode, "discovery framing layer too short")
	}
	var vector [4]byte
	copy(vector[:], b[2:6])
	if vector != discoveryFramingVector {
		return DiscoveryFraming{}, zerr.New(zerr.KindProtocolDecode, "invalid discovery framing vector")
	}
	universeDiscovery, err := decodeUniverseDiscovery(b[74:])
	if err != nil {
		return DiscoveryFraming{}, err
	}
	return DiscoveryFraming{
		SourceName:        sourceNameFromBytes(b[6:70]),
		UniverseDiscovery: universeDiscovery,
	}, nil
}

// PduKind discriminates the Pdu tagged union.
type PduKind int

const (
	PduData PduKind = iota
	PduSync
	PduDiscovery
)

// Pdu is any one of the three E1.31 framing-layer PDUs. Go has no
// sum type to match Rust's Pdu enum, so this carries a Kind tag plus
// one populated payload field.
type Pdu struct {
	Kind      PduKind
	Data      DataFraming
	Sync      SyncFraming
	Discovery DiscoveryFraming
}

func (p Pdu) size() int {
	switch p.Kind {
	case PduData:
		return p.Data.size()
	case PduSync:
		return p.Sync.size()
	case PduDiscovery:
		return p.Discovery.size()
	default:
		return 0
	}
}

func (p Pdu) encode() ([]byte, error) {
	switch p.Kind {
	case PduData:
		return p.Data.encode()
	case PduSync:
		return p.Sync.encode(), nil
	case PduDiscovery:
		return p.Discovery.encode()
	default:
		return nil, zerr.New(zerr.KindProtocolDecode, "unknown PDU kind")
	}
}

// decodePdu tries each framing layer in turn, mirroring the source's
// decode-by-attempt dispatch (no vector-first lookup table).
func decodePdu(b []byte) (Pdu, error) {
	if df, err := decodeDataFraming(b); err == nil {
		return Pdu{Kind: PduData, Data: df}, nil
	}
	if sf, err := decodeSyncFraming(b); err == nil {
		return Pdu{Kind: PduSync, Sync: sf}, nil
	}
	if disc, err := decodeDiscoveryFraming(b); err == nil {
		return Pdu{Kind: PduDiscovery, Discovery: disc}, nil
	}
	return Pdu{}, zerr.New(zerr.KindProtocolDecode, "unrecognized sACN PDU")
}

// RootLayer is the E1.31 Root Layer Protocol wrapper around a Pdu.
type RootLayer struct {
	Cid      ComponentIdentifier
	Extended bool
	Pdu      Pdu
}

func (r RootLayer) size() int { return 22 + r.Pdu.size() } // flags&length(2) + vector(4) + cid(16)

func (r RootLayer) encode() ([]byte, error) {
	pduBytes, err := r.Pdu.encode()
	if err != nil {
		return nil, err
	}
	vector := rootVector
	if r.Extended {
		vector = rootVectorExtended
	}
	buf := make([]byte, 0, r.size())
	buf = putUint16(buf, flagsAndLength(r.size()))
	buf = append(buf, vector[:]...)
	buf = append(buf, r.Cid[:]...)
	buf = append(buf, pduBytes...)
	return buf, nil
}

// decodeRootLayer operates on the full packet buffer (preamble
// included), since the root layer's on-wire vector/cid offsets are
// counted from the start of the packet, not from the root layer's own
// first byte.
func decodeRootLayer(b []byte) (RootLayer, error) {
	if len(b) < minRootLayerSize {
		return RootLayer{}, zerr.New(zerr.KindProtocolDecode, "root layer too short")
	}
	var vector [4]byte
	copy(vector[:], b[18:22])
	var extended bool
	switch vector {
	case rootVector:
		extended = false
	case rootVectorExtended:
		extended = true
	default:
		return RootLayer{}, zerr.New(zerr.KindProtocolDecode, "invalid root layer vector")
	}
	var cid ComponentIdentifier
	copy(cid[:], b[22:38])
	pdu, err := decodePdu(b[38:])
	if err != nil {
		return RootLayer{}, err
	}
	return RootLayer{Cid: cid, Extended: extended, Pdu: pdu}, nil
}

// Packet is a complete E1.31 datagram: preamble, root layer, (empty)
// postamble.
type Packet struct {
	Root RootLayer
}

// NewPacket builds a Packet around pdu, extending the root layer for
// sync/discovery PDUs as the protocol requires.
func NewPacket(cid ComponentIdentifier, pdu Pdu) Packet {
	return Packet{Root: RootLayer{Cid: cid, Extended: pdu.Kind != PduData, Pdu: pdu}}
}

// Encode renders the packet as network-ordered bytes.
func (p Packet) Encode() ([]byte, error) {
	rootBytes, err := p.Root.encode()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(preambleBytes)+len(rootBytes))
	buf = append(buf, preambleBytes[:]...)
	buf = append(buf, rootBytes...)
	return buf, nil
}

// Decode parses a Packet from received bytes, validating the preamble
// and root layer.
func Decode(b []byte) (Packet, error) {
	if len(b) < len(preambleBytes) {
		return Packet{}, zerr.New(zerr.KindProtocolDecode, "packet too short for preamble")
	}
	if !bytes.Equal(b[0:2], preambleBytes[0:2]) {
		return Packet{}, zerr.New(zerr.KindProtocolDecode, "invalid preamble size")
	}
	if !bytes.Equal(b[2:4], preambleBytes[2:4]) {
		return Packet{}, zerr.New(zerr.KindProtocolDecode, "invalid postamble size")
	}
	if !bytes.Equal(b[4:16], preambleBytes[4:16]) {
		return Packet{}, zerr.New(zerr.KindProtocolDecode, "invalid ACN packet identifier")
	}
	root, err := decodeRootLayer(b)
	if err != nil {
		return Packet{}, err
	}
	return Packet{Root: root}, nil
}
