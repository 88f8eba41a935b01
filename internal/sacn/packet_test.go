package sacn

import (
	"bytes"
	"testing"
)

func TestDataPacketRoundTrip(t *testing.T) {
	cid := NewComponentIdentifier()
	slots := make([]byte, 512)
	for i := range slots {
		slots[i] = byte(i)
	}

	packet := NewPacket(cid, Pdu{
		Kind: PduData,
		Data: DataFraming{
			SourceName:     "zeevonk",
			Priority:       100,
			SequenceNumber: 7,
			Universe:       1,
			Dmp:            NewDmp(0, slots),
		},
	})

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if decoded.Root.Cid != cid {
		t.Errorf("Cid = %v, want %v", decoded.Root.Cid, cid)
	}
	if decoded.Root.Extended {
		t.Errorf("Extended = true for a data packet, want false")
	}
	if decoded.Root.Pdu.Kind != PduData {
		t.Fatalf("Pdu.Kind = %v, want PduData", decoded.Root.Pdu.Kind)
	}

	df := decoded.Root.Pdu.Data
	if df.SourceName != "zeevonk" {
		t.Errorf("SourceName = %q, want %q", df.SourceName, "zeevonk")
	}
	if df.Priority != 100 {
		t.Errorf("Priority = %d, want 100", df.Priority)
	}
	if df.SequenceNumber != 7 {
		t.Errorf("SequenceNumber = %d, want 7", df.SequenceNumber)
	}
	if df.Universe != 1 {
		t.Errorf("Universe = %d, want 1", df.Universe)
	}
	if len(df.Dmp.PropertyValues) != 513 {
		t.Fatalf("len(PropertyValues) = %d, want 513", len(df.Dmp.PropertyValues))
	}
	if df.Dmp.PropertyValues[0] != 0 {
		t.Errorf("start code = %d, want 0", df.Dmp.PropertyValues[0])
	}
	if !bytes.Equal(df.Dmp.PropertyValues[1:], slots) {
		t.Errorf("decoded DMX slots do not match encoded slots")
	}
}

func TestDataPacketRejectsInvalidPriority(t *testing.T) {
	packet := NewPacket(NewComponentIdentifier(), Pdu{
		Kind: PduData,
		Data: DataFraming{SourceName: "zeevonk", Priority: 200, Universe: 1, Dmp: NewDmp(0, nil)},
	})
	if _, err := packet.Encode(); err == nil {
		t.Fatal("Encode() with priority 200 should have failed, sACN priorities are [0,200)")
	}
}

func TestSyncPacketRoundTrip(t *testing.T) {
	cid := NewComponentIdentifier()
	packet := NewPacket(cid, Pdu{Kind: PduSync, Sync: SyncFraming{SequenceNumber: 3, SynchronizationAddress: 42}})

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !decoded.Root.Extended {
		t.Error("Extended = false for a sync packet, want true")
	}
	if decoded.Root.Pdu.Kind != PduSync {
		t.Fatalf("Pdu.Kind = %v, want PduSync", decoded.Root.Pdu.Kind)
	}
	if decoded.Root.Pdu.Sync.SequenceNumber != 3 {
		t.Errorf("SequenceNumber = %d, want 3", decoded.Root.Pdu.Sync.SequenceNumber)
	}
	if decoded.Root.Pdu.Sync.SynchronizationAddress != 42 {
		t.Errorf("SynchronizationAddress = %d, want 42", decoded.Root.Pdu.Sync.SynchronizationAddress)
	}
}

func TestDiscoveryPacketRoundTrip(t *testing.T) {
	cid := NewComponentIdentifier()
	universes := []uint16{5, 3, 1, 4, 2}
	packet := NewPacket(cid, Pdu{
		Kind: PduDiscovery,
		Discovery: DiscoveryFraming{
			SourceName:        "zeevonk",
			UniverseDiscovery: NewUniverseDiscovery(0, 0, universes),
		},
	})

	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Root.Pdu.Kind != PduDiscovery {
		t.Fatalf("Pdu.Kind = %v, want PduDiscovery", decoded.Root.Pdu.Kind)
	}
	want := []uint16{1, 2, 3, 4, 5}
	got := decoded.Root.Pdu.Discovery.UniverseDiscovery.Universes
	if len(got) != len(want) {
		t.Fatalf("Universes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Universes[%d] = %d, want %d (discovery lists must be sorted)", i, got[i], want[i])
		}
	}
}

func TestDecodeRejectsBadPreamble(t *testing.T) {
	cid := NewComponentIdentifier()
	packet := NewPacket(cid, Pdu{Kind: PduData, Data: DataFraming{SourceName: "zeevonk", Universe: 1, Dmp: NewDmp(0, nil)}})
	encoded, err := packet.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	encoded[4] = 0xff // corrupt the ACN packet identifier
	if _, err := Decode(encoded); err == nil {
		t.Fatal("Decode() with a corrupted ACN packet identifier should have failed")
	}
}

func TestFlagsAndLength(t *testing.T) {
	got := flagsAndLength(126)
	if got>>12 != 0x7 {
		t.Errorf("flags nibble = %#x, want 0x7", got>>12)
	}
	if got&0xFFF != 126 {
		t.Errorf("length field = %d, want 126", got&0xFFF)
	}
}
