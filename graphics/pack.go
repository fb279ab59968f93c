package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	"github.com/kpango/glg"

	"github.com/rking788/ambientcg-vendor/ambientcg"
)

// PackedKind states how the metallic-roughness slot of a material was
// filled.
type PackedKind int

const (
	// PackedAbsent means neither source channel exists.
	PackedAbsent PackedKind = iota
	// PackedFile means a single source channel is referenced directly.
	PackedFile
	// PackedSynthesized means a combined map was generated from both
	// channels.
	PackedSynthesized
)

// PackedTexture is the outcome of the packing policy for the
// metallic-roughness slot.
type PackedTexture struct {
	Kind  PackedKind
	Path  string      // source file when Kind is PackedFile
	Image *image.RGBA // combined map when Kind is PackedSynthesized
}

// LoadGrayscale decodes the JPEG image at path and reduces it to
// single-channel grayscale intensity.
func LoadGrayscale(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ambientcg.ErrDecode, err)
	}

	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return gray, nil
}

// CombineRoughnessMetalness synthesizes the combined metallic-roughness
// map: every pixel holds 0 in the red channel, the roughness sample in
// green, and the metalness sample in blue. Both sources must have identical
// dimensions; a mismatch fails before any pixel is written since it
// indicates mismatched asset data upstream.
func CombineRoughnessMetalness(roughness, metalness image.Image) (*image.RGBA, error) {
	rb := roughness.Bounds()
	mb := metalness.Bounds()
	if rb.Dx() != mb.Dx() || rb.Dy() != mb.Dy() {
		return nil, fmt.Errorf("%w: roughness %dx%d, metalness %dx%d",
			ambientcg.ErrDimensionMismatch, rb.Dx(), rb.Dy(), mb.Dx(), mb.Dy())
	}

	out := image.NewRGBA(image.Rect(0, 0, rb.Dx(), rb.Dy()))
	for y := 0; y < rb.Dy(); y++ {
		for x := 0; x < rb.Dx(); x++ {
			r := grayAt(roughness, rb.Min.X+x, rb.Min.Y+y)
			m := grayAt(metalness, mb.Min.X+x, mb.Min.Y+y)
			out.SetRGBA(x, y, color.RGBA{0, r, m, 255})
		}
	}

	return out, nil
}

// PackMetallicRoughness applies the packing policy to the two source
// channels. Synthesis happens only when both exist; a lone channel is
// passed through by reference, and two missing channels leave the slot
// absent.
func PackMetallicRoughness(roughnessPath, metalnessPath string, roughnessExists, metalnessExists bool) (PackedTexture, error) {
	switch {
	case metalnessExists && roughnessExists:
		roughness, err := LoadGrayscale(roughnessPath)
		if err != nil {
			return PackedTexture{}, err
		}
		metalness, err := LoadGrayscale(metalnessPath)
		if err != nil {
			return PackedTexture{}, err
		}

		combined, err := CombineRoughnessMetalness(roughness, metalness)
		if err != nil {
			return PackedTexture{}, err
		}

		glg.Debugf("Synthesized %dx%d metallic-roughness map from %s and %s",
			combined.Bounds().Dx(), combined.Bounds().Dy(), roughnessPath, metalnessPath)
		return PackedTexture{Kind: PackedSynthesized, Image: combined}, nil
	case metalnessExists:
		return PackedTexture{Kind: PackedFile, Path: metalnessPath}, nil
	case roughnessExists:
		return PackedTexture{Kind: PackedFile, Path: roughnessPath}, nil
	default:
		return PackedTexture{}, nil
	}
}

func grayAt(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}
