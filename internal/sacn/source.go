package sacn

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"golang.org/x/net/ipv4"

	"github.com/zeevonk-project/zeevonk-go/internal/logging"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// DmxSendInterval is the cadence at which a Source re-sends a
// registered universe's current data, even if unchanged.
const DmxSendInterval = 44 * time.Millisecond

// UniverseDiscoveryInterval is the cadence at which a Source
// re-advertises its registered universes.
const UniverseDiscoveryInterval = 10 * time.Second

const multicastPort = DefaultPort

// MulticastAddr returns the standard E1.31 multicast group address for
// a universe (239.255.hi.lo).
func MulticastAddr(universe uint16) *net.UDPAddr {
	return &net.UDPAddr{
		IP:   net.IPv4(239, 255, byte(universe>>8), byte(universe&0xff)),
		Port: multicastPort,
	}
}

// universeDiscoveryAddr is the well-known multicast group universe
// discovery packets are sent to.
var universeDiscoveryAddr = &net.UDPAddr{IP: net.IPv4(239, 255, 250, 214), Port: multicastPort}

// SourceConfig configures a Source.
type SourceConfig struct {
	Cid  ComponentIdentifier
	Name string

	// Multicast selects group delivery; when false (or when multicast
	// send fails) the Source falls back to unicast to Destination.
	Multicast   bool
	Destination *net.UDPAddr

	Priority                uint8
	PreviewData             bool
	SynchronizationAddress  uint16
	ForceSynchronization    bool

	// InterfaceName optionally pins the multicast outgoing interface.
	InterfaceName string
}

// DefaultSourceConfig returns a SourceConfig with the protocol's
// default priority and a fresh random CID.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		Cid:      NewComponentIdentifier(),
		Name:     "zeevonk",
		Priority: 100,
	}
}

// Source sends E1.31 Data and Universe Discovery packets for a set of
// registered universes, at the protocol's fixed cadence.
//
// Grounded on original_source/src/server/sacn/source.rs; multicast
// interface binding follows _examples/gopatchy-artmap/sacn/sender.go's
// use of golang.org/x/net/ipv4, since the stdlib net package alone
// cannot select a multicast egress interface.
type Source struct {
	config SourceConfig
	conn   *net.UDPConn

	mu               sync.Mutex
	sequenceNumbers  map[uint16]uint8
	registeredUniverses map[uint16]struct{}
}

// NewSource opens the UDP socket a Source sends from.
func NewSource(config SourceConfig) (*Source, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return nil, zerr.Wrap(zerr.KindIO, "open sACN source socket", err)
	}

	if config.InterfaceName != "" {
		iface, err := net.InterfaceByName(config.InterfaceName)
		if err != nil {
			conn.Close()
			return nil, zerr.Wrap(zerr.KindIO, fmt.Sprintf("resolve sACN interface %q", config.InterfaceName), err)
		}
		pc := ipv4.NewPacketConn(conn)
		if err := pc.SetMulticastInterface(iface); err != nil {
			conn.Close()
			return nil, zerr.Wrap(zerr.KindIO, "bind sACN multicast interface", err)
		}
	}

	return &Source{
		config:              config,
		conn:                conn,
		sequenceNumbers:     make(map[uint16]uint8),
		registeredUniverses: make(map[uint16]struct{}),
	}, nil
}

// Close shuts the source's socket down.
func (s *Source) Close() error {
	return s.conn.Close()
}

// RegisterUniverse marks universe as advertised in discovery packets.
func (s *Source) RegisterUniverse(universe uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredUniverses[universe] = struct{}{}
}

// UnregisterUniverse removes universe from the discovery advertisement.
func (s *Source) UnregisterUniverse(universe uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registeredUniverses, universe)
}

func (s *Source) nextSequenceNumber(universe uint16) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.sequenceNumbers[universe] + 1
	s.sequenceNumbers[universe] = next
	return next
}

// SendUniverseData sends one Data Packet for universe, carrying slots
// (up to 512 DMX channel values, start code 0).
func (s *Source) SendUniverseData(universe uint16, slots []byte) error {
	sequenceNumber := s.nextSequenceNumber(universe)

	packet := NewPacket(s.config.Cid, Pdu{
		Kind: PduData,
		Data: DataFraming{
			SourceName:             s.config.Name,
			Priority:               s.config.Priority,
			SynchronizationAddress: s.config.SynchronizationAddress,
			SequenceNumber:         sequenceNumber,
			PreviewData:            s.config.PreviewData,
			ForceSynchronization:   s.config.ForceSynchronization,
			Universe:               universe,
			Dmp:                    NewDmp(0, slots),
		},
	})

	bytes, err := packet.Encode()
	if err != nil {
		return zerr.Wrap(zerr.KindProtocolDecode, "encode sACN data packet", err)
	}
	return s.send(bytes, MulticastAddr(universe))
}

// sendUniverseDiscovery sends one Universe Discovery Packet advertising
// every registered universe.
func (s *Source) sendUniverseDiscovery() error {
	s.mu.Lock()
	universes := make([]uint16, 0, len(s.registeredUniverses))
	for universe := range s.registeredUniverses {
		universes = append(universes, universe)
	}
	s.mu.Unlock()

	packet := NewPacket(s.config.Cid, Pdu{
		Kind: PduDiscovery,
		Discovery: DiscoveryFraming{
			SourceName:        s.config.Name,
			UniverseDiscovery: NewUniverseDiscovery(0, 0, universes),
		},
	})

	bytes, err := packet.Encode()
	if err != nil {
		return zerr.Wrap(zerr.KindProtocolDecode, "encode sACN discovery packet", err)
	}
	return s.send(bytes, universeDiscoveryAddr)
}

// send delivers bytes by multicast if configured, falling back to
// unicast (logged, never fatal) when multicast send fails or isn't
// configured and a unicast Destination is set.
func (s *Source) send(bytes []byte, multicastAddr *net.UDPAddr) error {
	if s.config.Multicast {
		if _, err := s.conn.WriteToUDP(bytes, multicastAddr); err == nil {
			return nil
		} else if s.config.Destination == nil {
			return zerr.Wrap(zerr.KindIO, "send sACN multicast packet", err)
		} else {
			logging.Warnf("sACN multicast send failed, falling back to unicast: %v", err)
		}
	}
	if s.config.Destination == nil {
		return zerr.New(zerr.KindIO, "sACN source has neither multicast nor a unicast destination configured")
	}
	if _, err := s.conn.WriteToUDP(bytes, s.config.Destination); err != nil {
		return zerr.Wrap(zerr.KindIO, "send sACN unicast packet", err)
	}
	return nil
}

// UniverseSnapshot supplies the current contents of a registered
// universe at send time.
type UniverseSnapshot func(universe uint16) []byte

// Run drives the source's two cadences - periodic data re-sends and
// periodic universe discovery - until ctx is cancelled. universes lists
// the ids to poll via snapshot on every data tick.
func (s *Source) Run(ctx context.Context, universes []uint16, snapshot UniverseSnapshot) {
	for _, universe := range universes {
		s.RegisterUniverse(universe)
	}

	dataTicker := time.NewTicker(DmxSendInterval)
	discoveryTicker := time.NewTicker(UniverseDiscoveryInterval)
	defer dataTicker.Stop()
	defer discoveryTicker.Stop()

	if err := s.sendUniverseDiscovery(); err != nil {
		logging.Warnf("initial sACN universe discovery send failed: %v", err)
	}

	target := time.Now().Add(DmxSendInterval)

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-dataTicker.C:
			if slip := now.Sub(target); slip > DmxSendInterval {
				logging.Warnf("sACN data tick overran by %v", slip)
			}
			target = target.Add(DmxSendInterval)

			for _, universe := range universes {
				if err := s.SendUniverseData(universe, snapshot(universe)); err != nil {
					logging.Warnf("sACN data packet send failed for universe %d: %v", universe, err)
				}
			}
		case <-discoveryTicker.C:
			if err := s.sendUniverseDiscovery(); err != nil {
				logging.Warnf("sACN universe discovery send failed: %v", err)
			}
		}
	}
}
