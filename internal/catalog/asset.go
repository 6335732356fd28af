package catalog

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/gif"  // upload decoders
	_ "image/jpeg" // upload decoders
	_ "image/png"  // upload decoders

	"github.com/gogpu/gg"
	_ "golang.org/x/image/webp" // upload decoders
)

// NativeSize is the square frame every built-in asset is drawn into.
const NativeSize = 300

// Asset is one selectable visual layer. Its position inside a category
// sequence, not the asset itself, decides its rarity tier.
type Asset interface {
	// ID is stable for the lifetime of the asset and is used in trait signatures.
	ID() string
	// Name is a human friendly description.
	Name() string
	// Label is the metadata value exported for this asset.
	Label() string
	// Decode produces a drawable image.
	Decode() (image.Image, error)
}

// Builtin is default art painted procedurally onto a NativeSize frame.
type Builtin struct {
	category Category
	index    int
	name     string
	paint    func(*painter)
}

func (b *Builtin) ID() string {
	return fmt.Sprintf("builtin:%s/%d", b.category, b.index)
}

func (b *Builtin) Name() string { return b.name }

// Label numbers built-in layers from 1 in their default order.
func (b *Builtin) Label() string {
	return fmt.Sprintf("Layer_%d", b.index+1)
}

func (b *Builtin) Decode() (image.Image, error) {
	dc := gg.NewContext(NativeSize, NativeSize)
	p := &painter{dc: dc}
	b.paint(p)
	p.keep(dc.Close())
	if p.err != nil {
		return nil, fmt.Errorf("paint %s: %w", b.name, p.err)
	}
	return dc.Image(), nil
}

// Upload wraps user supplied encoded image bytes.
type Upload struct {
	name string
	data []byte
	id   string
}

// NewUpload keeps a private copy of data. The identity is a hash of the bytes,
// so the same file uploaded twice has one identity.
func NewUpload(name string, data []byte) *Upload {
	h := fnv.New64a()
	h.Write(data)
	return &Upload{
		name: name,
		data: bytes.Clone(data),
		id:   fmt.Sprintf("upload:%016x", h.Sum64()),
	}
}

func (u *Upload) ID() string    { return u.id }
func (u *Upload) Name() string  { return u.name }
func (u *Upload) Label() string { return "Custom" }

// Size is the encoded length in bytes.
func (u *Upload) Size() int { return len(u.data) }

func (u *Upload) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(u.data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", u.name, err)
	}
	return img, nil
}
