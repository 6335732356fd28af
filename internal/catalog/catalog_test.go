package catalog

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"background", Background, false},
		{"  Eyes ", Eyes, false},
		{"HAIRSTYLE", Hairstyle, false},
		{"accessory", Accessory, false},
		{"tail", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Fatalf("expected ErrUnknownCategory, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategoriesAreBackToFront(t *testing.T) {
	want := []string{"background", "body", "eyes", "mouth", "hairstyle", "accessory"}
	for i, c := range Categories {
		if c.String() != want[i] {
			t.Errorf("Categories[%d] = %s, want %s", i, c, want[i])
		}
	}
}

func TestDefaultCatalogHasFourLayersPerCategory(t *testing.T) {
	c := Default()
	for _, cat := range Categories {
		layers := c.Layers(cat)
		if len(layers) != 4 {
			t.Fatalf("%s: expected 4 layers, got %d", cat, len(layers))
		}
		seen := map[string]bool{}
		for i, a := range layers {
			if seen[a.ID()] {
				t.Errorf("%s: duplicate id %s", cat, a.ID())
			}
			seen[a.ID()] = true
			if want := "Layer_" + string(rune('1'+i)); a.Label() != want {
				t.Errorf("%s[%d]: label %q, want %q", cat, i, a.Label(), want)
			}
		}
	}
}

func TestBuiltinDecodeIsNativeSize(t *testing.T) {
	for _, cat := range Categories {
		for _, a := range Default().Layers(cat) {
			img, err := a.Decode()
			if err != nil {
				t.Fatalf("%s: %v", a.ID(), err)
			}
			if b := img.Bounds(); b.Dx() != NativeSize || b.Dy() != NativeSize {
				t.Errorf("%s: bounds %v", a.ID(), b)
			}
		}
	}
}

func TestBuiltinArtCoverage(t *testing.T) {
	alpha := func(cat Category, i, x, y int) uint32 {
		t.Helper()
		img, err := Default().Layers(cat)[i].Decode()
		if err != nil {
			t.Fatal(err)
		}
		_, _, _, a := img.At(x, y).RGBA()
		return a >> 8
	}
	tests := []struct {
		name   string
		cat    Category
		index  int
		x, y   int
		opaque bool
	}{
		{"sky fills the frame", Background, 0, 2, 297, true},
		{"body centre", Body, 0, 150, 200, true},
		{"body leaves corners clear", Body, 0, 5, 5, false},
		{"eye white", Eyes, 0, 120, 150, true},
		{"no accessory", Accessory, 0, 150, 150, false},
		{"blaster barrel", Accessory, 3, 215, 174, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := alpha(tt.cat, tt.index, tt.x, tt.y)
			if tt.opaque && a != 255 {
				t.Errorf("alpha at (%d,%d) = %d, want opaque", tt.x, tt.y, a)
			}
			if !tt.opaque && a != 0 {
				t.Errorf("alpha at (%d,%d) = %d, want clear", tt.x, tt.y, a)
			}
		})
	}
}

func TestUploadsReplaceDefaults(t *testing.T) {
	c := Default()
	up := NewUpload("mine.png", tinyPNG(t))

	if err := c.SetUploadedLayers(Eyes, []Asset{up}); err != nil {
		t.Fatal(err)
	}
	layers := c.Layers(Eyes)
	if len(layers) != 1 || layers[0] != up {
		t.Fatalf("expected uploads to replace defaults, got %d layers", len(layers))
	}
	if len(c.Layers(Body)) != 4 {
		t.Fatal("other categories must keep defaults")
	}

	if err := c.SetUploadedLayers(Eyes, nil); err != nil {
		t.Fatal(err)
	}
	if len(c.Layers(Eyes)) != 4 {
		t.Fatal("empty upload slot should restore defaults")
	}
}

func TestAddAndRemoveUploadedLayers(t *testing.T) {
	c := Default()
	a := NewUpload("a.png", []byte("a"))
	b := NewUpload("b.png", []byte("b"))
	d := NewUpload("d.png", []byte("d"))

	if err := c.AddUploadedLayers(Mouth, a, b, d); err != nil {
		t.Fatal(err)
	}
	if err := c.RemoveUploadedLayer(Mouth, 1); err != nil {
		t.Fatal(err)
	}
	got := c.UploadedLayers(Mouth)
	if len(got) != 2 || got[0] != a || got[1] != d {
		t.Fatalf("unexpected uploads after removal: %v", got)
	}

	err := c.RemoveUploadedLayer(Mouth, 5)
	if !errors.Is(err, ErrLayerIndex) {
		t.Fatalf("expected ErrLayerIndex, got %v", err)
	}

	c.ClearUploadedLayers(Mouth)
	if len(c.UploadedLayers(Mouth)) != 0 || len(c.Layers(Mouth)) != 4 {
		t.Fatal("clear should restore defaults")
	}
}

func TestSnapshotIsolatedFromLaterMutation(t *testing.T) {
	c := Default()
	snap := c.Snapshot()

	if err := c.SetUploadedLayers(Body, []Asset{NewUpload("x.png", []byte("x"))}); err != nil {
		t.Fatal(err)
	}
	if len(snap.Layers(Body)) != 4 {
		t.Fatal("snapshot changed after mutating the source catalog")
	}
}

func TestUploadIdentityFollowsContent(t *testing.T) {
	a := NewUpload("one.png", []byte("same"))
	b := NewUpload("two.png", []byte("same"))
	c := NewUpload("three.png", []byte("other"))
	if a.ID() != b.ID() {
		t.Error("identical bytes should share an identity")
	}
	if a.ID() == c.ID() {
		t.Error("different bytes should not share an identity")
	}
	if a.Label() != "Custom" {
		t.Errorf("upload label = %q", a.Label())
	}
}

func TestUploadDecodeFailure(t *testing.T) {
	if _, err := NewUpload("broken.png", []byte("not an image")).Decode(); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestInvalidCategoryMutators(t *testing.T) {
	c := Default()
	if err := c.SetUploadedLayers(Category(42), nil); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if c.Layers(Category(-1)) != nil {
		t.Fatal("invalid category should have no layers")
	}
}
