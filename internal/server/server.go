// Package server hosts the Zeevonk hub: a TCP listener that serves the
// patch, accepts pending attribute values from any number of connected
// clients, resolves them into a DMX multiverse, and drives that
// multiverse out over sACN at the protocol's fixed cadence.
//
// Grounded on original_source/crates/zeevonk/src/server/mod.rs
// (Server/ServerState/ClientHandler) and
// original_source/crates/zeevonk/src/server/protocols/agent.rs (the
// sACN output driver).
package server

import (
	"context"
	"net"
	"sync"

	"github.com/zeevonk-project/zeevonk-go/internal/logging"
	"github.com/zeevonk-project/zeevonk-go/internal/sacn"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// Server accepts client connections on a single TCP listener and serves
// them all from one shared state.
type Server struct {
	state *State

	outputs []boundOutput

	mu        sync.Mutex
	listener  net.Listener
	boundAddr net.Addr
}

// boundOutput pairs a configured sACN output with the live source that
// sends it.
type boundOutput struct {
	config SacnOutput
	source *sacn.Source
}

// New builds a Server for a fixed patch. outputs configures the sACN
// sources the server drives on their own cadence, independent of client
// traffic; an empty
// list is valid (the server still answers RPC requests, it just emits
// no DMX).
//
// Each configured output gets its own (*sacn.Source), each with its own
// independent time.Ticker-driven cadence (internal/sacn.Source.Run).
// The original fans a single shared 44ms heartbeat out to per-source OS
// threads (protocols/agent.rs's ProtocolsProcess); per-output goroutines
// with their own tickers are the idiomatic Go shape for the same
// requirement and keep one output's socket and sequence counters
// separate from another's. Multicast delivery is a supplemented feature:
// the original never implemented SacnMode::Multicast (a todo!() stub in
// agent.rs) and only ever sent unicast.
func New(patch *show.Patch, outputs []SacnOutput) (*Server, error) {
	state := newState(patch)

	bound := make([]boundOutput, 0, len(outputs))
	for _, out := range outputs {
		source, err := sacn.NewSource(out.sourceConfig())
		if err != nil {
			return nil, zerr.Wrap(zerr.KindIO, "start sACN output "+out.Label, err)
		}
		bound = append(bound, boundOutput{config: out, source: source})
	}

	return &Server{state: state, outputs: bound}, nil
}

// State returns the server's shared state, for tests and for a caller
// that wants to seed attribute values before the first client connects.
func (s *Server) State() *State { return s.state }

// Address returns the address the server is bound to. Panics if called
// before Start has bound a listener, mirroring the source's own
// precondition.
func (s *Server) Address() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boundAddr == nil {
		panic("server should have been started before calling this")
	}
	return s.boundAddr
}

// Start binds addr and begins accepting connections and driving sACN
// output, both until ctx is cancelled. Start blocks until the listener
// is closed (by ctx cancellation) or fails to accept.
func (s *Server) Start(ctx context.Context, addr string) error {
	logging.Infof("starting server...")

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.Wrap(zerr.KindIO, "bind server listener", err)
	}
	s.mu.Lock()
	s.listener = listener
	s.boundAddr = listener.Addr()
	s.mu.Unlock()
	logging.Debugf("listener bound on %s", listener.Addr())

	for _, out := range s.outputs {
		go s.driveOutput(ctx, out)
	}
	go func() {
		<-ctx.Done()
		_ = listener.Close()
		for _, out := range s.outputs {
			_ = out.source.Close()
		}
	}()

	logging.Infof("zeevonk server started")
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logging.Errorf("accept error: %v", err)
			return zerr.Wrap(zerr.KindIO, "accept connection", err)
		}
		handler := newClientHandler(conn, s.state)
		go handler.run()
	}
}

// driveOutput runs out's source against its destination universe,
// resolving each data tick's payload from the server's current output
// multiverse at the output's configured local universe.
func (s *Server) driveOutput(ctx context.Context, out boundOutput) {
	destination := out.config.DestinationUniverse
	local := out.config.LocalUniverse

	snapshot := func(uint16) []byte {
		return s.state.multiverseSnapshotBytes(local)
	}
	out.source.Run(ctx, []uint16{destination}, snapshot)
}
