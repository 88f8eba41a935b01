package server

import (
	"sync"

	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/resolver"
	"github.com/zeevonk-project/zeevonk-go/internal/rpc"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
)

// State is the state shared by every connected client: the patch built
// at startup (read-only thereafter), the pending attribute values
// clients have requested, and the multiverse those values resolve into.
//
// Grounded on original_source/crates/zeevonk/src/server/mod.rs's
// ServerState, which guards the same three fields with independent
// tokio::sync::RwLocks; here a single mutex covers pending values and
// the output multiverse since every operation that touches one also
// touches the other (set-then-resolve, or resolve-then-snapshot).
type State struct {
	patch *show.Patch

	mu         sync.Mutex
	pending    *rpc.AttributeValues
	multiverse *dmx.Multiverse
}

func newState(patch *show.Patch) *State {
	return &State{
		patch:      patch,
		pending:    rpc.NewAttributeValues(),
		multiverse: dmx.NewMultiverse(),
	}
}

// requestShowData answers RequestShowData: the built patch, unchanged
// by client traffic.
func (s *State) requestShowData() rpc.ClientMessage {
	return rpc.ResponseState(s.patch)
}

// requestDmxOutput answers RequestDmxOutput: resolve any pending values
// and return a snapshot of the resulting multiverse.
func (s *State) requestDmxOutput() rpc.ClientMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolveLocked()
	return rpc.ResponseDmxOutput(s.multiverse)
}

// requestSetAttributeValues answers RequestSetAttributeValues: merge
// values into the pending set, resolve, and acknowledge.
func (s *State) requestSetAttributeValues(values *rpc.AttributeValues) rpc.ClientMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, v := range values.Values {
		s.pending.Set(key.FixturePath, key.Attribute, v)
	}
	s.resolveLocked()
	return rpc.ResponseSetAttributeValues()
}

// resolveLocked seeds the output multiverse from the patch's default
// multiverse so channel functions nothing has been set for still carry
// their GDTF default, then resolves pending values on top of it. Must
// be called with s.mu held.
func (s *State) resolveLocked() {
	s.multiverse.CopyFrom(s.patch.DefaultMultiverse)
	resolver.Resolve(s.patch, s.pending, s.multiverse)
}

// multiverseSnapshotBytes returns the current 512-slot contents of id,
// without resolving first: the sACN output driver reads whatever the
// last RPC request already resolved, the same posture the original's
// ProtocolsProcess takes by reading output_multiverse directly rather
// than forcing a resolve of its own on every 44ms tick.
func (s *State) multiverseSnapshotBytes(id dmx.UniverseID) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.multiverse.Universe(id)
	if u == nil {
		return make([]byte, 512)
	}
	return u.Bytes()
}
