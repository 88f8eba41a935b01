package server

import (
	"net"

	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/sacn"
)

// SacnOutput configures one sACN source the server drives: which local
// universe it mirrors, which destination universe number it's sent
// under, and how (unicast to a fixed address, or multicast).
//
// Grounded on original_source/crates/zeevonk/src/showfile/protocols.rs's
// SacnOutput/SacnMode, translated from internal/showfile.SacnOutput at
// server-construction time.
type SacnOutput struct {
	Label string

	LocalUniverse       dmx.UniverseID
	DestinationUniverse uint16

	Multicast     bool
	DestinationIP net.IP

	Priority    uint8
	PreviewData bool
}

func (o SacnOutput) sourceConfig() sacn.SourceConfig {
	cfg := sacn.DefaultSourceConfig()
	cfg.Name = o.Label
	cfg.Multicast = o.Multicast
	cfg.Priority = o.Priority
	cfg.PreviewData = o.PreviewData
	if o.DestinationIP != nil {
		cfg.Destination = &net.UDPAddr{IP: o.DestinationIP, Port: sacn.DefaultPort}
	}
	return cfg
}
