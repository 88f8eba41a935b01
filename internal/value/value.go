// Package value implements ClampedValue: a [0,1]-bounded float32 and its
// big-endian byte encodings, grounded on original_source/src/value
// (referenced from src/core/dmx and src/gdcs/fixture.rs as `ClampedValue`).
package value

import (
	"math"

	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/logging"
)

// ClampedValue is a float32 constrained to [0.0, 1.0].
type ClampedValue float32

// MinValue and MaxValue are the bounds of a ClampedValue.
const (
	MinValue ClampedValue = 0.0
	MaxValue ClampedValue = 1.0
)

// New constructs a ClampedValue, clamping v into [0.0, 1.0].
func New(v float32) ClampedValue {
	if v < float32(MinValue) {
		return MinValue
	}
	if v > float32(MaxValue) {
		return MaxValue
	}
	return ClampedValue(v)
}

// AsFloat32 returns the underlying float32.
func (c ClampedValue) AsFloat32() float32 {
	return float32(c)
}

// maxForByteWidth returns 2^(8k) - 1 as a float64, for k in [1,4].
func maxForByteWidth(k int) float64 {
	return math.Pow(2, float64(8*k)) - 1
}

// ToBytes scales c against 2^(8k)-1 and returns k big-endian bytes,
// rounding to the nearest integer. k must be in [1,4].
func (c ClampedValue) ToBytes(k int) []byte {
	if k < 1 || k > 4 {
		return nil
	}
	maxVal := maxForByteWidth(k)
	raw := uint64(math.Round(float64(c) * maxVal))

	out := make([]byte, k)
	for i := 0; i < k; i++ {
		shift := uint((k - 1 - i) * 8)
		out[i] = byte(raw >> shift)
	}
	return out
}

// FromBytes decodes a big-endian byte sequence (1..=4 bytes) back into a
// ClampedValue, inverting ToBytes.
func FromBytes(b []byte) ClampedValue {
	k := len(b)
	if k < 1 || k > 4 {
		return 0
	}
	var raw uint64
	for _, byt := range b {
		raw = raw<<8 | uint64(byt)
	}
	maxVal := maxForByteWidth(k)
	return New(float32(float64(raw) / maxVal))
}

// FromRaw converts a raw integer value with the given byte width (as
// produced by a GDTF DmxValue) into a ClampedValue: raw / (2^(8*width)-1).
func FromRaw(raw uint64, byteWidth int) ClampedValue {
	if byteWidth < 1 {
		byteWidth = 1
	}
	maxVal := maxForByteWidth(byteWidth)
	return New(float32(float64(raw) / maxVal))
}

// ToAddressValues packs c into the most-significant byte first across the
// given addresses: 1 address uses a single byte scaled against 255, 2
// addresses use a two-byte big-endian value scaled against 65535, and so
// on up to 4 addresses. Lengths outside 1..=4 log a warning and produce no
// pairs, so the caller writes nothing.
func (c ClampedValue) ToAddressValues(addresses []dmx.Address) []AddressValue {
	n := len(addresses)
	if n < 1 || n > 4 {
		logging.Warnf("cannot write a value across %d addresses, only 1 to 4 are supported", n)
		return nil
	}
	bytes := c.ToBytes(n)
	out := make([]AddressValue, n)
	for i, addr := range addresses {
		out[i] = AddressValue{Address: addr, Value: dmx.Value(bytes[i])}
	}
	return out
}

// AddressValue pairs a DMX address with the value to write there.
type AddressValue struct {
	Address dmx.Address
	Value   dmx.Value
}
