// Package asset is an in-memory stand-in for the host's asset server. It
// decodes channel textures from disk, accepts synthesized images, and
// stores assembled materials behind opaque handles.
package asset

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/google/uuid"

	"github.com/rking788/ambientcg-vendor/ambientcg"
)

// Handle identifies one registered asset.
type Handle string

// AddressMode selects how a sampler treats coordinates outside [0, 1].
type AddressMode uint32

const (
	AddressModeClampToEdge AddressMode = iota
	AddressModeRepeat
)

// SamplerSettings configure texture addressing per axis.
type SamplerSettings struct {
	AddressModeU AddressMode
	AddressModeV AddressMode
}

// RepeatSampler returns settings that tile the texture on both axes.
// AmbientCG packs are authored to tile.
func RepeatSampler() SamplerSettings {
	return SamplerSettings{
		AddressModeU: AddressModeRepeat,
		AddressModeV: AddressModeRepeat,
	}
}

// TextureAsset is one registered texture. Source is the originating file
// path for textures loaded from disk and empty for synthesized images.
type TextureAsset struct {
	Image   image.Image
	Sampler SamplerSettings
	Source  string
}

// Registry holds registered textures and materials.
type Registry struct {
	textures  map[Handle]TextureAsset
	materials map[Handle]any
}

func NewRegistry() *Registry {
	return &Registry{
		textures:  make(map[Handle]TextureAsset),
		materials: make(map[Handle]any),
	}
}

// LoadTexture decodes the JPEG channel file at path and registers it with
// the supplied sampler settings.
func (r *Registry) LoadTexture(path string, sampler SamplerSettings) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", path, ambientcg.ErrDecode, err)
	}

	id := makeHandle()
	r.textures[id] = TextureAsset{Image: img, Sampler: sampler, Source: path}
	return id, nil
}

// AddTexture registers an already-decoded image, such as a synthesized
// combined map. The image never touches storage.
func (r *Registry) AddTexture(img image.Image) Handle {
	id := makeHandle()
	r.textures[id] = TextureAsset{Image: img}
	return id
}

// AddMaterial registers an assembled material record.
func (r *Registry) AddMaterial(m any) Handle {
	id := makeHandle()
	r.materials[id] = m
	return id
}

// Texture returns a registered texture asset.
func (r *Registry) Texture(h Handle) (TextureAsset, bool) {
	t, ok := r.textures[h]
	return t, ok
}

// Material returns a registered material record.
func (r *Registry) Material(h Handle) (any, bool) {
	m, ok := r.materials[h]
	return m, ok
}

func makeHandle() Handle {
	return Handle(uuid.NewString())
}
