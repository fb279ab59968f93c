package graphics

import (
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/rking788/ambientcg-vendor/ambientcg"
)

func TestCombineRoughnessMetalness(t *testing.T) {
	const size = 8
	roughness := image.NewGray(image.Rect(0, 0, size, size))
	metalness := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			roughness.Pix[roughness.PixOffset(x, y)] = uint8(x*16 + y)
			metalness.Pix[metalness.PixOffset(x, y)] = uint8(255 - x*16 - y)
		}
	}

	combined, err := CombineRoughnessMetalness(roughness, metalness)
	if err != nil {
		t.Fatalf("CombineRoughnessMetalness failed: %v", err)
	}

	if combined.Bounds().Dx() != size || combined.Bounds().Dy() != size {
		t.Fatalf("Unexpected combined bounds: %v", combined.Bounds())
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := combined.RGBAAt(x, y)
			if px.R != 0 {
				t.Fatalf("Red channel at (%d, %d) = %d, expected 0", x, y, px.R)
			}
			if px.G != roughness.GrayAt(x, y).Y {
				t.Fatalf("Green channel at (%d, %d) = %d, expected roughness %d", x, y, px.G, roughness.GrayAt(x, y).Y)
			}
			if px.B != metalness.GrayAt(x, y).Y {
				t.Fatalf("Blue channel at (%d, %d) = %d, expected metalness %d", x, y, px.B, metalness.GrayAt(x, y).Y)
			}
			if px.A != 255 {
				t.Fatalf("Alpha channel at (%d, %d) = %d, expected 255", x, y, px.A)
			}
		}
	}
}

func TestCombineDimensionMismatch(t *testing.T) {
	roughness := image.NewGray(image.Rect(0, 0, 8, 8))
	metalness := image.NewGray(image.Rect(0, 0, 8, 9))

	_, err := CombineRoughnessMetalness(roughness, metalness)
	if !errors.Is(err, ambientcg.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}

func writeGrayJPEG(t *testing.T, path string, value uint8, size int) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, size, size))
	for i := range img.Pix {
		img.Pix[i] = value
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func TestLoadGrayscale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roughness.jpg")
	writeGrayJPEG(t, path, 200, 16)

	gray, err := LoadGrayscale(path)
	if err != nil {
		t.Fatalf("LoadGrayscale failed: %v", err)
	}
	if gray.Bounds().Dx() != 16 || gray.Bounds().Dy() != 16 {
		t.Errorf("Unexpected bounds: %v", gray.Bounds())
	}
}

func TestLoadGrayscaleDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("not a jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadGrayscale(path)
	if !errors.Is(err, ambientcg.ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
}

func TestPackPolicyTable(t *testing.T) {
	dir := t.TempDir()
	roughnessPath := filepath.Join(dir, "Bricks001_1K-JPG_Roughness.jpg")
	metalnessPath := filepath.Join(dir, "Bricks001_1K-JPG_Metalness.jpg")
	writeGrayJPEG(t, roughnessPath, 180, 16)
	writeGrayJPEG(t, metalnessPath, 60, 16)

	// Both present: synthesize; the combined map matches the decoded
	// grayscale sources pixel for pixel.
	packed, err := PackMetallicRoughness(roughnessPath, metalnessPath, true, true)
	if err != nil {
		t.Fatalf("Pack with both channels failed: %v", err)
	}
	if packed.Kind != PackedSynthesized || packed.Image == nil {
		t.Fatalf("Expected a synthesized map, got %+v", packed)
	}

	roughness, _ := LoadGrayscale(roughnessPath)
	metalness, _ := LoadGrayscale(metalnessPath)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			px := packed.Image.RGBAAt(x, y)
			if px.R != 0 || px.G != roughness.GrayAt(x, y).Y || px.B != metalness.GrayAt(x, y).Y {
				t.Fatalf("Combined pixel mismatch at (%d, %d): %+v", x, y, px)
			}
		}
	}

	// Metalness only: pass through the metalness file.
	packed, err = PackMetallicRoughness(roughnessPath, metalnessPath, false, true)
	if err != nil {
		t.Fatalf("Pack with metalness only failed: %v", err)
	}
	if packed.Kind != PackedFile || packed.Path != metalnessPath {
		t.Errorf("Expected metalness pass-through, got %+v", packed)
	}

	// Roughness only: pass through the roughness file.
	packed, err = PackMetallicRoughness(roughnessPath, metalnessPath, true, false)
	if err != nil {
		t.Fatalf("Pack with roughness only failed: %v", err)
	}
	if packed.Kind != PackedFile || packed.Path != roughnessPath {
		t.Errorf("Expected roughness pass-through, got %+v", packed)
	}

	// Neither: absent.
	packed, err = PackMetallicRoughness(roughnessPath, metalnessPath, false, false)
	if err != nil {
		t.Fatalf("Pack with no channels failed: %v", err)
	}
	if packed.Kind != PackedAbsent {
		t.Errorf("Expected an absent slot, got %+v", packed)
	}
}

func TestPackDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	roughnessPath := filepath.Join(dir, "roughness.jpg")
	metalnessPath := filepath.Join(dir, "metalness.jpg")
	writeGrayJPEG(t, roughnessPath, 180, 16)
	writeGrayJPEG(t, metalnessPath, 60, 32)

	_, err := PackMetallicRoughness(roughnessPath, metalnessPath, true, true)
	if !errors.Is(err, ambientcg.ErrDimensionMismatch) {
		t.Errorf("Expected ErrDimensionMismatch, got %v", err)
	}
}
