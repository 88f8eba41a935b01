// Package client implements a Zeevonk client: a connection to a
// running server plus a cadence-driven processor loop for computing and
// pushing attribute values.
//
// Grounded on original_source/crates/zeevonk/src/client/mod.rs.
package client

import (
	"net"
	"sync"

	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/logging"
	"github.com/zeevonk-project/zeevonk-go/internal/rpc"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// Client holds one TCP connection to a Zeevonk server. All requests
// share the connection and are serialized by mu, mirroring the
// source's tokio::sync::Mutex<Inner> - one request in flight at a time,
// answered by the next frame read from the connection. A frame of any
// other type fails the request with an error; it is not skipped.
type Client struct {
	mu   sync.Mutex
	conn net.Conn
}

// Connect dials addr and returns a ready Client.
func Connect(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, zerr.Wrap(zerr.KindIO, "connect to zeevonk server", err)
	}
	logging.Infof("client connected")
	return &Client{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// RequestState fetches the server's current patch.
func (c *Client) RequestState() (*show.Patch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := rpc.WriteServerMessage(c.conn, rpc.RequestShowData()); err != nil {
		return nil, err
	}
	msg, err := rpc.ReadClientMessage(c.conn)
	if err != nil {
		return nil, err
	}
	if msg.Type != rpc.TypeResponseState || msg.Patch == nil {
		return nil, zerr.New(zerr.KindProtocolDecode, "expected ResponseState")
	}
	return patchFromShowData(msg.Patch), nil
}

// RequestDmxOutput fetches a one-shot snapshot of the server's resolved
// DMX multiverse.
func (c *Client) RequestDmxOutput() (*dmx.Multiverse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := rpc.WriteServerMessage(c.conn, rpc.RequestDmxOutput()); err != nil {
		return nil, err
	}
	msg, err := rpc.ReadClientMessage(c.conn)
	if err != nil {
		return nil, err
	}
	if msg.Type != rpc.TypeResponseDmxOutput || msg.Multiverse == nil {
		return nil, zerr.New(zerr.KindProtocolDecode, "expected ResponseDmxOutput")
	}
	return msg.Multiverse.Restore(), nil
}

// RequestSetAttributeValues pushes values to the server and waits for
// its acknowledgement.
func (c *Client) RequestSetAttributeValues(values *rpc.AttributeValues) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := rpc.WriteServerMessage(c.conn, rpc.RequestSetAttributeValues(values)); err != nil {
		return err
	}
	msg, err := rpc.ReadClientMessage(c.conn)
	if err != nil {
		return err
	}
	if msg.Type != rpc.TypeResponseSetAttributeValues {
		return zerr.New(zerr.KindProtocolDecode, "expected ResponseSetAttributeValues")
	}
	return nil
}

// patchFromShowData rebuilds the map-keyed Patch the processor walks
// from the flattened fixture list carried over the wire.
func patchFromShowData(sd *rpc.ShowData) *show.Patch {
	patch := show.NewPatch()
	for i := range sd.Fixtures {
		f := sd.Fixtures[i]
		patch.Fixtures[f.Path] = &f
	}
	return patch
}
