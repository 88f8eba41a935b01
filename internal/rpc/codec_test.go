package rpc

import (
	"bytes"
	"testing"

	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

func TestServerMessageRoundTrip(t *testing.T) {
	values := NewAttributeValues()
	values.Set(show.NewFixturePath(1), attribute.Attribute{Kind: attribute.KindDimmer}, value.New(0.5))

	var buf bytes.Buffer
	want := RequestSetAttributeValues(values)
	if err := WriteServerMessage(&buf, want); err != nil {
		t.Fatalf("WriteServerMessage() error = %v", err)
	}

	got, err := ReadServerMessage(&buf)
	if err != nil {
		t.Fatalf("ReadServerMessage() error = %v", err)
	}
	if got.Type != TypeRequestSetAttributeValues {
		t.Fatalf("Type = %v, want %v", got.Type, TypeRequestSetAttributeValues)
	}
	gotValue, ok := got.AttributeValues.Get(show.NewFixturePath(1), attribute.Attribute{Kind: attribute.KindDimmer})
	if !ok {
		t.Fatal("decoded message is missing the dimmer value")
	}
	if gotValue.AsFloat32() != 0.5 {
		t.Errorf("decoded value = %v, want 0.5", gotValue.AsFloat32())
	}
}

func TestClientMessageRoundTrip(t *testing.T) {
	patch := show.NewPatch()
	path := show.NewFixturePath(1)
	patch.Fixtures[path] = &show.Fixture{
		Path: path,
		Name: "Fixture 1",
		ChannelFunctions: map[attribute.Attribute]show.FixtureChannelFunction{},
	}

	var buf bytes.Buffer
	want := ResponseState(patch)
	if err := WriteClientMessage(&buf, want); err != nil {
		t.Fatalf("WriteClientMessage() error = %v", err)
	}

	got, err := ReadClientMessage(&buf)
	if err != nil {
		t.Fatalf("ReadClientMessage() error = %v", err)
	}
	if got.Type != TypeResponseState {
		t.Fatalf("Type = %v, want %v", got.Type, TypeResponseState)
	}
	if len(got.Patch.Fixtures) != 1 {
		t.Fatalf("len(Patch.Fixtures) = %d, want 1", len(got.Patch.Fixtures))
	}
	if got.Patch.Fixtures[0].Path != path {
		t.Errorf("decoded fixture path = %v, want %v", got.Patch.Fixtures[0].Path, path)
	}
}

func TestReadRejectsOversizedFrame(t *testing.T) {
	var buf bytes.Buffer
	header := []byte{0xff, 0xff, 0xff, 0x7f} // length = 0x7fffffff, far past MaxPacketLength
	buf.Write(header)

	if _, err := ReadServerMessage(&buf); err == nil {
		t.Fatal("ReadServerMessage() with an oversized length prefix should have failed")
	}
}
