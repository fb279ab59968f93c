package ambientcg

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tidwall/gjson"
)

// ParseManifest reads a JSON manifest of named material descriptors:
//
//	{"materials": [
//	    {"name": "Bricks001", "resolution": "2K", "subfolder": "brick", "uvScale": [8, 8]}
//	]}
//
// Only name is required; resolution defaults to 1K.
func ParseManifest(data []byte) ([]Material, error) {
	result := gjson.ParseBytes(data)

	list := result.Get("materials")
	if list.Exists() == false {
		return nil, errors.New("manifest: materials list not found")
	}

	var out []Material
	for _, entry := range list.Array() {
		m, err := parseMaterialEntry(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// ParseMaterialDefinition parses a single material descriptor object, the
// unit stored per row in the definition database.
func ParseMaterialDefinition(data []byte) (Material, error) {
	return parseMaterialEntry(gjson.ParseBytes(data))
}

func parseMaterialEntry(entry gjson.Result) (Material, error) {
	name := entry.Get("name").String()
	if name == "" {
		return Material{}, errors.New("manifest: material without a name")
	}

	m := Material{Name: name}

	if res := entry.Get("resolution"); res.Exists() {
		parsed, err := ParseResolution(res.String())
		if err != nil {
			return Material{}, fmt.Errorf("manifest: material %s: %w", name, err)
		}
		m.Resolution = parsed
	}

	m.Subfolder = entry.Get("subfolder").String()

	if scale := entry.Get("uvScale"); scale.Exists() {
		parts := scale.Array()
		if len(parts) != 2 {
			return Material{}, fmt.Errorf("manifest: material %s: uvScale must have 2 components", name)
		}
		v := mgl32.Vec2{float32(parts[0].Float()), float32(parts[1].Float())}
		m.UVScale = &v
	}

	return m, nil
}

// LoadManifest reads and parses a manifest file from disk.
func LoadManifest(path string) ([]Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}
