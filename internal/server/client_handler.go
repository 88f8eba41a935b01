package server

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/zeevonk-project/zeevonk-go/internal/logging"
	"github.com/zeevonk-project/zeevonk-go/internal/rpc"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// clientHandler owns one client connection: it reads a request,
// dispatches it against the shared State, and writes the response back,
// until the connection closes or a frame fails to decode.
//
// Grounded on original_source/crates/zeevonk/src/server/mod.rs's
// ClientHandler, whose FramedRead/FramedWrite pair becomes a plain
// net.Conn read/write loop here - Go's accept-loop/per-connection-
// goroutine idiom needs no separate split-halves type.
type clientHandler struct {
	conn  net.Conn
	state *State
}

func newClientHandler(conn net.Conn, state *State) *clientHandler {
	return &clientHandler{conn: conn, state: state}
}

func (h *clientHandler) run() {
	peer := h.conn.RemoteAddr()
	logging.Infof("client connected: %s", peer)
	defer h.conn.Close()

	for {
		msg, err := rpc.ReadServerMessage(h.conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logging.Errorf("error reading packet from %s: %v", peer, err)
			}
			break
		}

		response, err := h.process(msg)
		if err != nil {
			logging.Errorf("error processing packet from %s: %v", peer, err)
			break
		}
		if err := rpc.WriteClientMessage(h.conn, response); err != nil {
			logging.Errorf("failed to send response to %s: %v", peer, err)
			break
		}
	}

	logging.Infof("client disconnected: %s", peer)
}

// process dispatches msg against the shared state. An unrecognized
// message type is a decode error, not a no-op: the connection is
// terminated rather than answered.
func (h *clientHandler) process(msg rpc.ServerMessage) (rpc.ClientMessage, error) {
	switch msg.Type {
	case rpc.TypeRequestShowData:
		return h.state.requestShowData(), nil
	case rpc.TypeRequestDmxOutput:
		return h.state.requestDmxOutput(), nil
	case rpc.TypeRequestSetAttributeValues:
		return h.state.requestSetAttributeValues(msg.AttributeValues), nil
	default:
		return rpc.ClientMessage{}, zerr.New(zerr.KindProtocolDecode, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}
