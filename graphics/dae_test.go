package graphics

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/rking788/ambientcg-vendor/ambientcg"
)

func TestWriteMaterialDAE(t *testing.T) {
	root := t.TempDir()
	m := ambientcg.Material{Name: "Bricks001", Resolution: ambientcg.Resolution1K}
	writeChannelFiles(t, root, m, 8,
		ambientcg.ChannelColor, ambientcg.ChannelNormalGL, ambientcg.ChannelRoughness)

	set := ambientcg.BuildChannelPaths(m, root)
	outPath := filepath.Join(t.TempDir(), "bricks.dae")
	writer := &DAEWriter{Path: outPath}

	if err := writer.WriteMaterial(m, set, nil); err != nil {
		t.Fatalf("WriteMaterial failed: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(outPath); err != nil {
		t.Fatalf("Failed to parse written document: %v", err)
	}

	collada := doc.SelectElement("COLLADA")
	if collada == nil {
		t.Fatal("Missing COLLADA root element")
	}

	images := collada.FindElements("./library_images/image")
	if len(images) != 3 {
		t.Fatalf("Expected 3 image entries, found %d", len(images))
	}
	foundColor := false
	for _, img := range images {
		initFrom := img.SelectElement("init_from")
		if initFrom == nil {
			t.Fatalf("Image %s missing init_from", img.SelectAttrValue("id", ""))
		}
		if strings.HasSuffix(initFrom.Text(), "Bricks001_1K-JPG_Color.jpg") {
			foundColor = true
		}
	}
	if !foundColor {
		t.Error("No image entry references the color channel file")
	}

	material := collada.FindElement("./library_materials/material")
	if material == nil {
		t.Fatal("Missing material element")
	}
	if id := material.SelectAttrValue("id", ""); id != "Bricks001_1K-JPG" {
		t.Errorf("Material id = %q, expected the pack stem", id)
	}

	samplers := collada.FindElements("./library_effects/effect/profile_COMMON/newparam/sampler2D")
	if len(samplers) != 3 {
		t.Fatalf("Expected 3 sampler2D entries, found %d", len(samplers))
	}
	for _, s := range samplers {
		if wrapS := s.SelectElement("wrap_s"); wrapS == nil || wrapS.Text() != "WRAP" {
			t.Error("Sampler missing WRAP wrap_s mode")
		}
		if wrapT := s.SelectElement("wrap_t"); wrapT == nil || wrapT.Text() != "WRAP" {
			t.Error("Sampler missing WRAP wrap_t mode")
		}
	}

	diffuseTexture := collada.FindElement("./library_effects/effect/profile_COMMON/technique/blinn/diffuse/texture")
	if diffuseTexture == nil {
		t.Fatal("Diffuse slot should reference the color sampler, found no texture element")
	}

	ambientColor := collada.FindElement("./library_effects/effect/profile_COMMON/technique/blinn/ambient/color")
	if ambientColor == nil {
		t.Error("Ambient slot should fall back to a constant color with no occlusion file")
	}
}

func TestWriteMaterialDAEWithoutChannels(t *testing.T) {
	m := ambientcg.Material{Name: "Missing001", Resolution: ambientcg.Resolution1K}
	set := ambientcg.BuildChannelPaths(m, t.TempDir())

	writer := &DAEWriter{Path: filepath.Join(t.TempDir(), "missing.dae")}
	if err := writer.WriteMaterial(m, set, nil); err == nil {
		t.Error("Expected an error with no channel files on disk")
	}
}
