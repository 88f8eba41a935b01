package show

import (
	"sort"

	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
)

// Patch is the built, ready-to-resolve show: every fixture in the
// patch keyed by its path, plus the default multiverse seeded from each
// fixture's initial channel function values.
//
// Grounded on original_source/crates/zeevonk/src/state/patch.rs. The
// source keys fixtures in a BTreeMap for path order; here a plain map
// plus a sorted-paths helper serves the same "iterate in a stable
// order" need without requiring a balanced-tree container.
type Patch struct {
	Fixtures         map[FixturePath]*Fixture
	DefaultMultiverse *dmx.Multiverse
}

// NewPatch returns an empty Patch.
func NewPatch() *Patch {
	return &Patch{
		Fixtures:          make(map[FixturePath]*Fixture),
		DefaultMultiverse: dmx.NewMultiverse(),
	}
}

// FixturePaths returns every fixture path in the patch, sorted.
func (p *Patch) FixturePaths() []FixturePath {
	paths := make([]FixturePath, 0, len(p.Fixtures))
	for path := range p.Fixtures {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })
	return paths
}
