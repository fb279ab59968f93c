package graphics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kpango/glg"

	"github.com/rking788/ambientcg-vendor/ambientcg"
	"github.com/rking788/ambientcg-vendor/asset"
)

// Importer loads AmbientCG material packs from disk into an asset registry,
// negotiating resolution fallbacks and packing the metallic-roughness slot.
// A single load call either produces a complete material or fails; no
// partial material is ever registered.
type Importer struct {
	cfg      ambientcg.Config
	registry *asset.Registry
	exists   ambientcg.ExistsFunc
}

// NewImporter builds an importer over the given registry. A nil exists
// oracle falls back to the os.Stat-backed default.
func NewImporter(cfg ambientcg.Config, registry *asset.Registry, exists ambientcg.ExistsFunc) *Importer {
	if exists == nil {
		exists = ambientcg.PathExists
	}
	return &Importer{
		cfg:      cfg.Normalize(),
		registry: registry,
		exists:   exists,
	}
}

// Load imports m using the descriptor's own UV scale, if any.
func (imp *Importer) Load(m ambientcg.Material) (asset.Handle, error) {
	if m.UVScale != nil {
		return imp.LoadWithUVScale(m, *m.UVScale)
	}
	return imp.LoadWithoutUVScale(m)
}

// LoadWithoutUVScale imports m with an identity UV transform.
func (imp *Importer) LoadWithoutUVScale(m ambientcg.Material) (asset.Handle, error) {
	return imp.load(m, nil)
}

// LoadWithUVScale imports m, overriding any UV scale on the descriptor.
func (imp *Importer) LoadWithUVScale(m ambientcg.Material, scale mgl32.Vec2) (asset.Handle, error) {
	return imp.load(m, &scale)
}

// Resolve runs resolution negotiation for m under the importer's
// configuration. With negotiation disabled the descriptor comes back
// unchanged and unchecked.
func (imp *Importer) Resolve(m ambientcg.Material) (ambientcg.Material, error) {
	if !imp.cfg.ResolutionNegotiation {
		return m, nil
	}
	return ambientcg.Negotiate(m, imp.cfg.MaterialsPath, imp.exists)
}

func (imp *Importer) load(m ambientcg.Material, scale *mgl32.Vec2) (asset.Handle, error) {
	m, err := imp.Resolve(m)
	if err != nil {
		return "", err
	}

	set := ambientcg.BuildChannelPaths(m, imp.cfg.MaterialsPath)

	material := StandardMaterial{
		Metallic:            1.0,
		PerceptualRoughness: 1.0,
		UVTransform:         UVTransformFor(scale),
	}

	if material.OcclusionTexture, err = imp.loadOptional(set.Occlusion); err != nil {
		return "", err
	}
	if material.BaseColorTexture, err = imp.loadOptional(set.Color); err != nil {
		return "", err
	}
	if material.DisplacementTexture, err = imp.loadOptional(set.Displacement); err != nil {
		return "", err
	}
	if material.NormalMapTexture, err = imp.loadOptional(set.NormalGL); err != nil {
		return "", err
	}

	packed, err := PackMetallicRoughness(set.Roughness, set.Metalness,
		imp.exists(set.Roughness), imp.exists(set.Metalness))
	if err != nil {
		return "", err
	}
	switch packed.Kind {
	case PackedSynthesized:
		material.MetallicRoughnessTexture = imp.registry.AddTexture(packed.Image)
	case PackedFile:
		if material.MetallicRoughnessTexture, err = imp.loadRepeat(packed.Path); err != nil {
			return "", err
		}
	}

	glg.Infof("Imported material %s at %s", m.Name, m.Resolution)
	return imp.registry.AddMaterial(material), nil
}

// loadOptional registers the channel file at path with repeat sampling when
// it exists. Absence is not an error; the slot stays empty.
func (imp *Importer) loadOptional(path string) (asset.Handle, error) {
	if !imp.exists(path) {
		return "", nil
	}
	return imp.loadRepeat(path)
}

func (imp *Importer) loadRepeat(path string) (asset.Handle, error) {
	h, err := imp.registry.LoadTexture(path, asset.RepeatSampler())
	if err != nil {
		return "", fmt.Errorf("channel %s: %w", path, err)
	}
	return h, nil
}
