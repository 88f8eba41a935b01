package sacn

import "testing"

func TestMulticastAddrDerivation(t *testing.T) {
	addr := MulticastAddr(1)
	want := "239.255.0.1"
	if addr.IP.String() != want {
		t.Errorf("MulticastAddr(1).IP = %s, want %s", addr.IP.String(), want)
	}
	if addr.Port != DefaultPort {
		t.Errorf("MulticastAddr(1).Port = %d, want %d", addr.Port, DefaultPort)
	}

	addr2 := MulticastAddr(257) // hi=1, lo=1
	want2 := "239.255.1.1"
	if addr2.IP.String() != want2 {
		t.Errorf("MulticastAddr(257).IP = %s, want %s", addr2.IP.String(), want2)
	}
}

func TestSequenceNumberWraparound(t *testing.T) {
	source, err := NewSource(DefaultSourceConfig())
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer source.Close()

	for i := 0; i < 255; i++ {
		source.nextSequenceNumber(1)
	}
	if got := source.nextSequenceNumber(1); got != 0 {
		t.Errorf("sequence number after 256 increments = %d, want 0 (wraps at uint8 boundary)", got)
	}

	if got := source.nextSequenceNumber(2); got != 1 {
		t.Errorf("first sequence number for a distinct universe = %d, want 1 (per-universe counters are independent)", got)
	}
}

func TestRegisterUniverse(t *testing.T) {
	source, err := NewSource(DefaultSourceConfig())
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer source.Close()

	source.RegisterUniverse(1)
	source.RegisterUniverse(2)
	if _, ok := source.registeredUniverses[1]; !ok {
		t.Error("universe 1 should be registered")
	}
	source.UnregisterUniverse(1)
	if _, ok := source.registeredUniverses[1]; ok {
		t.Error("universe 1 should no longer be registered after UnregisterUniverse")
	}
	if _, ok := source.registeredUniverses[2]; !ok {
		t.Error("universe 2 should still be registered")
	}
}

func TestSendRequiresMulticastOrDestination(t *testing.T) {
	config := DefaultSourceConfig()
	config.Multicast = false
	config.Destination = nil
	source, err := NewSource(config)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer source.Close()

	err = source.SendUniverseData(1, make([]byte, 512))
	if err == nil {
		t.Fatal("SendUniverseData() with neither multicast nor a unicast destination should have failed")
	}
}
