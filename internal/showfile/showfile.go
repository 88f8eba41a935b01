// Package showfile defines the on-disk showfile schema (general config,
// patch, and protocol settings) and loads it from a showfile folder: a
// showfile.json description plus a gdtf_files/ directory of GDTF
// archives.
//
// Grounded on original_source/{crates/zeevonk,}/src/showfile/{mod,patch,
// protocols,config}.rs. GDTF archive parsing itself is out of scope
// (spec Non-goal); LoadFromFolder only enumerates the .gdtf file paths found in
// the directory for the caller (internal/patchbuilder's caller) to
// decode via whatever GDTF reader is wired in.
package showfile

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

const (
	descriptionFileName = "showfile.json"
	gdtfFilesDirName     = "gdtf_files"
)

// Showfile is the full on-disk show description: server config, the
// fixture patch, and protocol I/O settings, plus the GDTF file paths
// discovered alongside it.
type Showfile struct {
	Config    Config    `json:"config"`
	Patch     Patch     `json:"patch"`
	Protocols Protocols `json:"protocols"`

	GdtfFilePaths []string `json:"-"`
}

// Config is general server configuration.
type Config struct {
	Address string `json:"address"`
}

// DefaultConfig returns the showfile default configuration.
func DefaultConfig() Config {
	return Config{Address: "127.0.0.1:7334"}
}

// Patch lists the fixtures placed in the show.
type Patch struct {
	Fixtures []Fixture `json:"fixtures"`
}

// Fixture is a single patched fixture entry: its identity, label,
// start address, and GDTF type/mode.
type Fixture struct {
	ID      show.FixtureId `json:"id"`
	Label   string         `json:"label"`
	Address dmx.Address    `json:"address"`
	Kind    FixtureKind    `json:"kind"`
}

// FixtureKind names the GDTF fixture type and DMX mode a Fixture uses.
type FixtureKind struct {
	GdtfFixtureTypeID uuid.UUID `json:"gdtfFixtureTypeId"`
	GdtfDmxMode       string    `json:"gdtfDmxMode"`
}

// Protocols holds every DMX I/O protocol's configuration.
type Protocols struct {
	Sacn Sacn `json:"sacn"`
}

// Sacn lists the sACN outputs the server drives.
type Sacn struct {
	Outputs []SacnOutput `json:"outputs"`
}

// SacnMode selects unicast (to a fixed destination) or multicast
// delivery for a SacnOutput.
type SacnMode struct {
	Multicast      bool   `json:"multicast"`
	DestinationIP net.IP `json:"destinationIp,omitempty"`
}

// SacnOutput configures a single sACN universe output.
type SacnOutput struct {
	Label                string   `json:"label"`
	Mode                 SacnMode `json:"mode"`
	LocalUniverse        uint16   `json:"localUniverse"`
	DestinationUniverse  uint16   `json:"destinationUniverse"`
	Priority             uint8    `json:"priority"`
	PreviewData          bool     `json:"previewData"`
}

// LoadFromFolder reads showfile.json from dir and enumerates the .gdtf
// files under dir/gdtf_files.
func LoadFromFolder(dir string) (*Showfile, error) {
	descPath := filepath.Join(dir, descriptionFileName)
	f, err := os.Open(descPath)
	if err != nil {
		return nil, zerr.Wrap(zerr.KindIO, "open showfile description", err)
	}
	defer f.Close()

	sf := &Showfile{Config: DefaultConfig()}
	if err := json.NewDecoder(f).Decode(sf); err != nil {
		return nil, zerr.Wrap(zerr.KindShowfileBuild, "decode showfile description", err)
	}

	gdtfDir := filepath.Join(dir, gdtfFilesDirName)
	entries, err := os.ReadDir(gdtfDir)
	if err != nil {
		return nil, zerr.Wrap(zerr.KindIO, "read gdtf_files directory", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".gdtf" {
			continue
		}
		sf.GdtfFilePaths = append(sf.GdtfFilePaths, filepath.Join(gdtfDir, entry.Name()))
	}

	return sf, nil
}
