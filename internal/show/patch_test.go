package show

import "testing"

func TestPatchFixturePathsIsSorted(t *testing.T) {
	patch := NewPatch()
	paths := []FixturePath{
		NewFixturePath(3),
		NewFixturePath(1),
		NewFixturePath(2).ExtendedWith(1),
		NewFixturePath(2),
	}
	for _, p := range paths {
		patch.Fixtures[p] = &Fixture{Path: p}
	}

	got := patch.FixturePaths()
	if len(got) != len(paths) {
		t.Fatalf("FixturePaths() returned %d paths, want %d", len(got), len(paths))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Less(got[i]) {
			t.Errorf("FixturePaths() not sorted at index %d: %v before %v", i, got[i-1], got[i])
		}
	}
}

func TestNewPatchIsEmpty(t *testing.T) {
	patch := NewPatch()
	if len(patch.Fixtures) != 0 {
		t.Errorf("NewPatch().Fixtures has %d entries, want 0", len(patch.Fixtures))
	}
	if patch.DefaultMultiverse == nil {
		t.Error("NewPatch().DefaultMultiverse should not be nil")
	}
}
