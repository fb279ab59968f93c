package main

import (
	"encoding/json"
	"errors"
	"image/jpeg"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kpango/glg"

	"github.com/rking788/ambientcg-vendor/ambientcg"
	"github.com/rking788/ambientcg-vendor/graphics"
)

// MaterialReport is the JSON body returned for a material inspection
// request.
type MaterialReport struct {
	Name                string          `json:"name"`
	RequestedResolution string          `json:"requestedResolution"`
	ResolvedResolution  string          `json:"resolvedResolution"`
	Channels            map[string]bool `json:"channels"`
	MetallicRoughness   string          `json:"metallicRoughness"`
}

// GetMaterial resolves the requested material and reports which channels
// exist at the resolved resolution and how the metallic-roughness slot
// would be filled.
func GetMaterial(w http.ResponseWriter, r *http.Request) {

	m, requested, ok := materialFromRequest(w, r)
	if !ok {
		return
	}

	resolved, ok := resolveOr404(w, m)
	if !ok {
		return
	}

	set := ambientcg.BuildChannelPaths(resolved, config.MaterialsPath)

	report := MaterialReport{
		Name:                resolved.Name,
		RequestedResolution: requested.String(),
		ResolvedResolution:  resolved.Resolution.String(),
		Channels:            map[string]bool{},
	}
	for _, c := range ambientcg.Channels {
		report.Channels[c.String()] = ambientcg.PathExists(set.Path(c))
	}

	metalness := report.Channels[ambientcg.ChannelMetalness.String()]
	roughness := report.Channels[ambientcg.ChannelRoughness.String()]
	switch {
	case metalness && roughness:
		report.MetallicRoughness = "synthesized"
	case metalness:
		report.MetallicRoughness = "metalness"
	case roughness:
		report.MetallicRoughness = "roughness"
	default:
		report.MetallicRoughness = "absent"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetPackedMap streams the metallic-roughness map for the resolved
// material: the synthesized combined map when both channels exist, the lone
// source file when only one does.
func GetPackedMap(w http.ResponseWriter, r *http.Request) {

	m, _, ok := materialFromRequest(w, r)
	if !ok {
		return
	}

	resolved, ok := resolveOr404(w, m)
	if !ok {
		return
	}

	set := ambientcg.BuildChannelPaths(resolved, config.MaterialsPath)

	packed, err := graphics.PackMetallicRoughness(set.Roughness, set.Metalness,
		ambientcg.PathExists(set.Roughness), ambientcg.PathExists(set.Metalness))
	if err != nil {
		glg.Errorf("Failed to pack %s: %s", resolved.Name, err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Something went wrong packing the material"))
		return
	}

	switch packed.Kind {
	case graphics.PackedSynthesized:
		w.Header().Set("Content-Type", "image/jpeg")
		if err := jpeg.Encode(w, packed.Image, nil); err != nil {
			glg.Errorf("Failed to encode the combined map: %s", err.Error())
		}
	case graphics.PackedFile:
		w.Header().Set("Content-Type", "image/jpeg")
		http.ServeFile(w, r, packed.Path)
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Neither metalness nor roughness exists for this material"))
	}
}

func materialFromRequest(w http.ResponseWriter, r *http.Request) (ambientcg.Material, ambientcg.Resolution, bool) {

	params := mux.Vars(r)
	name := params["name"]
	resolution, err := ambientcg.ParseResolution(params["resolution"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid resolution tag specified"))
		return ambientcg.Material{}, 0, false
	}

	m := lookupMaterial(name)
	m.Resolution = resolution
	return m, resolution, true
}

func resolveOr404(w http.ResponseWriter, m ambientcg.Material) (ambientcg.Material, bool) {

	resolved, err := importer.Resolve(m)
	if err != nil {
		if errors.Is(err, ambientcg.ErrNoSmallerResolution) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("No resolution of the requested material exists"))
			return ambientcg.Material{}, false
		}
		glg.Errorf("Failed to resolve %s: %s", m.Name, err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Something went wrong resolving the material"))
		return ambientcg.Material{}, false
	}

	return resolved, true
}
