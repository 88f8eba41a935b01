// Package rpc implements Zeevonk's client/server wire protocol: a
// length-prefixed MessagePack frame carrying a tagged-union payload in
// either direction over a single TCP connection.
//
// Grounded on original_source/crates/zeevonk/src/packet/{mod,client,
// server,codec}.rs (tokio_util Encoder/Decoder framing, rmp_serde
// payload encoding), adapted to blocking io.Reader/io.Writer framing
// over a net.Conn.
package rpc

import (
	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

// MessageType discriminates the tagged-union payloads below.
type MessageType string

const (
	TypeRequestShowData          MessageType = "RequestShowData"
	TypeRequestDmxOutput         MessageType = "RequestDmxOutput"
	TypeRequestSetAttributeValues MessageType = "RequestSetAttributeValues"

	TypeResponseState              MessageType = "ResponseState"
	TypeResponseDmxOutput           MessageType = "ResponseDmxOutput"
	TypeResponseSetAttributeValues MessageType = "ResponseSetAttributeValues"
)

// AttributeValueKey identifies a single pending attribute value: the
// fixture it targets and the attribute being set.
type AttributeValueKey struct {
	FixturePath show.FixturePath
	Attribute   attribute.Attribute
}

// AttributeValues is a flat set of (fixture path, attribute) -> value
// pairs, the payload of a RequestSetAttributeValues message.
//
// Grounded on packet/mod.rs's AttributeValues (a
// HashMap<(FixturePath, Attribute), ClampedValue>).
type AttributeValues struct {
	Values map[AttributeValueKey]value.ClampedValue `msgpack:"values"`
}

// NewAttributeValues returns an empty AttributeValues set.
func NewAttributeValues() *AttributeValues {
	return &AttributeValues{Values: make(map[AttributeValueKey]value.ClampedValue)}
}

// Set records a value for path/attr, replacing any previous value.
func (av *AttributeValues) Set(path show.FixturePath, attr attribute.Attribute, v value.ClampedValue) {
	av.Values[AttributeValueKey{FixturePath: path, Attribute: attr}] = v
}

// Get returns the pending value for path/attr, if any.
func (av *AttributeValues) Get(path show.FixturePath, attr attribute.Attribute) (value.ClampedValue, bool) {
	v, ok := av.Values[AttributeValueKey{FixturePath: path, Attribute: attr}]
	return v, ok
}

// ServerMessage is a request sent from a client to the server.
//
// Grounded on packet/server.rs's ServerPacketPayload.
type ServerMessage struct {
	Type MessageType `msgpack:"type"`

	// AttributeValues is set only for TypeRequestSetAttributeValues.
	AttributeValues *AttributeValues `msgpack:"attributeValues,omitempty"`
}

// RequestShowData builds a ServerMessage requesting the baked patch.
func RequestShowData() ServerMessage { return ServerMessage{Type: TypeRequestShowData} }

// RequestDmxOutput builds a ServerMessage requesting a one-shot DMX
// output snapshot.
func RequestDmxOutput() ServerMessage { return ServerMessage{Type: TypeRequestDmxOutput} }

// RequestSetAttributeValues builds a ServerMessage pushing pending
// attribute values to the server.
func RequestSetAttributeValues(values *AttributeValues) ServerMessage {
	return ServerMessage{Type: TypeRequestSetAttributeValues, AttributeValues: values}
}

// ClientMessage is a response sent from the server to a client.
//
// Grounded on packet/client.rs's ClientPacketPayload.
type ClientMessage struct {
	Type MessageType `msgpack:"type"`

	// Patch is set only for TypeResponseState.
	Patch *ShowData `msgpack:"patch,omitempty"`
	// Multiverse is set only for TypeResponseDmxOutput.
	Multiverse *MultiverseSnapshot `msgpack:"multiverse,omitempty"`
}

// MultiverseSnapshot is the wire form of a dmx.Multiverse: each
// registered universe's 512 channel values, keyed by universe id.
// dmx.Multiverse itself carries an internal mutex and is never
// serialized directly.
type MultiverseSnapshot struct {
	Universes map[dmx.UniverseID][]byte `msgpack:"universes"`
}

// SnapshotMultiverse captures mv's current contents for transmission.
func SnapshotMultiverse(mv *dmx.Multiverse) *MultiverseSnapshot {
	snap := &MultiverseSnapshot{Universes: make(map[dmx.UniverseID][]byte)}
	for _, id := range mv.UniverseIDs() {
		snap.Universes[id] = mv.Universe(id).Bytes()
	}
	return snap
}

// Restore builds a fresh dmx.Multiverse from the snapshot.
func (s *MultiverseSnapshot) Restore() *dmx.Multiverse {
	mv := dmx.NewMultiverse()
	for id, bytes := range s.Universes {
		u := dmx.NewUniverse()
		for i, b := range bytes {
			if i >= 512 {
				break
			}
			ch, err := dmx.NewChannel(uint16(i + 1))
			if err != nil {
				continue
			}
			u.SetValue(ch, dmx.Value(b))
		}
		mv.CreateUniverse(id, u)
	}
	return mv
}

// ShowData is the wire form of a built patch's fixture tree, sent to
// clients in response to RequestShowData.
type ShowData struct {
	Fixtures []show.Fixture `msgpack:"fixtures"`
}

// ResponseState builds a ClientMessage carrying the current patch.
func ResponseState(patch *show.Patch) ClientMessage {
	fixtures := make([]show.Fixture, 0, len(patch.Fixtures))
	for _, path := range patch.FixturePaths() {
		fixtures = append(fixtures, *patch.Fixtures[path])
	}
	return ClientMessage{Type: TypeResponseState, Patch: &ShowData{Fixtures: fixtures}}
}

// ResponseDmxOutput builds a ClientMessage carrying a multiverse
// snapshot.
func ResponseDmxOutput(mv *dmx.Multiverse) ClientMessage {
	return ClientMessage{Type: TypeResponseDmxOutput, Multiverse: SnapshotMultiverse(mv)}
}

// ResponseSetAttributeValues builds the (payload-less) acknowledgement
// for a RequestSetAttributeValues request.
func ResponseSetAttributeValues() ClientMessage {
	return ClientMessage{Type: TypeResponseSetAttributeValues}
}
