package server

import (
	"reflect"
	"strings"
	"testing"

	"creature-forge/internal/catalog"
	"creature-forge/internal/rarity"
	"creature-forge/internal/render"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []Action
	}{
		{"generate keys", []byte("gG \r"), []Action{ActionGenerate, ActionGenerate, ActionGenerate, ActionGenerate}},
		{"collection", []byte("c"), []Action{ActionCollection}},
		{"back", []byte("b"), []Action{ActionPrevious}},
		{"arrows", []byte("\x1b[C\x1b[D\x1b[A"), []Action{ActionGenerate, ActionPrevious}},
		{"quit", []byte("q"), []Action{ActionQuit}},
		{"ctrl-c", []byte{3}, []Action{ActionQuit}},
		{"ignored", []byte("xyz"), nil},
		{"mixed", []byte("gxcq"), []Action{ActionGenerate, ActionCollection, ActionQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseInput(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseInput(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLibrarySnapshotIsolation(t *testing.T) {
	lib := NewLibrary(catalog.Default(), rarity.DefaultTable())
	snap, _ := lib.Snapshot()
	v := lib.Version()

	lib.ReplaceUploads(map[catalog.Category][]catalog.Asset{
		catalog.Eyes: {catalog.NewUpload("eye.png", []byte("eye"))},
	})
	if lib.Version() == v {
		t.Error("version did not advance on reload")
	}
	if len(snap.Layers(catalog.Eyes)) != 4 {
		t.Error("snapshot saw the reload")
	}
	fresh, _ := lib.Snapshot()
	if got := fresh.Layers(catalog.Eyes); len(got) != 1 || got[0].Label() != "Custom" {
		t.Errorf("fresh snapshot eyes = %v", got)
	}
}

func TestSessionGenerateAndHistory(t *testing.T) {
	lib := NewLibrary(catalog.Default(), rarity.DefaultTable())
	st := newSession(lib, 17, 5, 40)

	st.generate()
	first := st.current
	st.generate()
	second := st.current
	if first == nil || second == nil || second.ID <= first.ID {
		t.Fatalf("ids not increasing: %v then %v", first, second)
	}
	if st.image == nil || st.image.Bounds().Dx() != 400 {
		t.Error("creature was not rendered")
	}

	st.previous()
	if st.current != first {
		t.Error("previous did not restore the earlier creature")
	}
	st.previous()
	if st.status == "" {
		t.Error("expected a status when history is empty")
	}
}

func TestSessionCollectionSummary(t *testing.T) {
	lib := NewLibrary(catalog.Default(), rarity.DefaultTable())
	st := newSession(lib, 3, 12, 40)
	st.buildCollection()
	if len(st.summary) < 2 || !strings.HasPrefix(st.summary[0], "Collection of 12") {
		t.Errorf("summary = %q", st.summary)
	}
}

func TestSessionNotesReload(t *testing.T) {
	lib := NewLibrary(catalog.Default(), rarity.DefaultTable())
	st := newSession(lib, 3, 1, 40)
	if st.noteReload() {
		t.Error("reload reported without a change")
	}
	lib.SetTable(rarity.DefaultTable())
	if !st.noteReload() || st.status != "layers or weights reloaded" {
		t.Error("reload not noticed")
	}
}

func TestSessionGeneratesWithReloadedTable(t *testing.T) {
	lib := NewLibrary(catalog.Default(), rarity.DefaultTable())
	st := newSession(lib, 11, 1, 40)

	var rareOnly rarity.Table
	for _, cat := range catalog.Categories {
		rareOnly[cat] = rarity.Weights{Rare: 1}
	}
	lib.SetTable(rareOnly)

	for range 5 {
		st.generate()
		for _, tr := range st.current.Traits() {
			if tr.Tier != rarity.Rare {
				t.Fatalf("%s trait tier = %s, want rare after SetTable", tr.Category, tr.Tier)
			}
		}
		if st.current.Overall != rarity.OverallRare {
			t.Errorf("overall = %s, want rare", st.current.Overall)
		}
	}
}

func TestSessionDraw(t *testing.T) {
	lib := NewLibrary(catalog.Default(), rarity.DefaultTable())
	st := newSession(lib, 9, 1, 30)
	st.generate()

	out := st.draw(render.NewScreen(100, 30))
	if !strings.Contains(out, "▀") {
		t.Error("preview missing from frame")
	}
	if small := st.draw(render.NewScreen(20, 5)); !strings.Contains(small, "t") {
		t.Errorf("small terminal frame = %q", small)
	}
}
