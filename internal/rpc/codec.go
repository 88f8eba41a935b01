package rpc

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// MaxPacketLength bounds a single frame's payload size, guarding
// against a corrupt or hostile length prefix driving an unbounded
// allocation.
//
// Grounded on original_source/src/packet/codec.rs's MAX_PACKET_LENGTH
// (the tokio_util Encoder/Decoder pair this replaces); translated to
// Go's blocking io.Reader/io.Writer framing idiom, reading one frame at
// a time per connection goroutine instead of tokio's buffered,
// partial-frame-aware codec.
const MaxPacketLength = 8 * 1024 * 1024

// WriteServerMessage encodes msg as a length-prefixed MessagePack frame
// and writes it to w.
func WriteServerMessage(w io.Writer, msg ServerMessage) error {
	return writeFrame(w, msg)
}

// WriteClientMessage encodes msg as a length-prefixed MessagePack frame
// and writes it to w.
func WriteClientMessage(w io.Writer, msg ClientMessage) error {
	return writeFrame(w, msg)
}

func writeFrame(w io.Writer, payload any) error {
	body, err := msgpack.Marshal(payload)
	if err != nil {
		return zerr.Wrap(zerr.KindProtocolDecode, "encode rpc payload", err)
	}
	if len(body) > MaxPacketLength {
		return zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("rpc packet too large: %d bytes", len(body)))
	}

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(body)))
	if _, err := w.Write(header[:]); err != nil {
		return zerr.Wrap(zerr.KindIO, "write rpc frame header", err)
	}
	if _, err := w.Write(body); err != nil {
		return zerr.Wrap(zerr.KindIO, "write rpc frame body", err)
	}
	return nil
}

// ReadServerMessage reads one length-prefixed frame from r and decodes
// it as a ServerMessage.
func ReadServerMessage(r io.Reader) (ServerMessage, error) {
	var msg ServerMessage
	body, err := readFrame(r)
	if err != nil {
		return msg, err
	}
	if err := msgpack.Unmarshal(body, &msg); err != nil {
		return msg, zerr.Wrap(zerr.KindProtocolDecode, "decode rpc server message", err)
	}
	return msg, nil
}

// ReadClientMessage reads one length-prefixed frame from r and decodes
// it as a ClientMessage.
func ReadClientMessage(r io.Reader) (ClientMessage, error) {
	var msg ClientMessage
	body, err := readFrame(r)
	if err != nil {
		return msg, err
	}
	if err := msgpack.Unmarshal(body, &msg); err != nil {
		return msg, zerr.Wrap(zerr.KindProtocolDecode, "decode rpc client message", err)
	}
	return msg, nil
}

func readFrame(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, zerr.Wrap(zerr.KindIO, "read rpc frame header", err)
	}

	length := binary.LittleEndian.Uint32(header[:])
	if int64(length) > MaxPacketLength {
		return nil, zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("rpc packet too large: %d bytes", length))
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, zerr.Wrap(zerr.KindIO, "read rpc frame body", err)
	}
	return body, nil
}
