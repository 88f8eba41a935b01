package zerr

import (
	"errors"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	e := New(KindShowfileBuild, "missing fixture type")
	want := "showfile_build: missing fixture type"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapIncludesUnderlyingError(t *testing.T) {
	underlying := errors.New("disk full")
	e := Wrap(KindIO, "bind listener", underlying)

	want := "io: bind listener: disk full"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, underlying) {
		t.Error("Wrap() should preserve the underlying error for errors.Is")
	}
}

func TestIsKind(t *testing.T) {
	e := New(KindAddressArithmetic, "channel out of range")

	if !IsKind(e, KindAddressArithmetic) {
		t.Error("IsKind() should match the error's own kind")
	}
	if IsKind(e, KindIO) {
		t.Error("IsKind() should not match a different kind")
	}
	if IsKind(errors.New("plain error"), KindIO) {
		t.Error("IsKind() should be false for a non-*Error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindIO, "io"},
		{KindProtocolDecode, "protocol_decode"},
		{KindShowfileBuild, "showfile_build"},
		{KindAddressArithmetic, "address_arithmetic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
