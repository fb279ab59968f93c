package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rking788/ambientcg-vendor/asset"
)

// StandardMaterial is the flat record handed to the host's material
// constructor. Texture fields hold empty handles when the channel is
// absent. Metallic and PerceptualRoughness are multipliers against the
// supplied maps and are always 1.0 for imported packs.
type StandardMaterial struct {
	BaseColorTexture         asset.Handle
	MetallicRoughnessTexture asset.Handle
	NormalMapTexture         asset.Handle
	OcclusionTexture         asset.Handle
	DisplacementTexture      asset.Handle

	Metallic            float32
	PerceptualRoughness float32

	UVTransform mgl32.Mat3
}

// UVTransformFor returns the UV transform for an optional anisotropic
// scale: identity when scale is nil, an X/Y scale with no rotation or
// translation otherwise.
func UVTransformFor(scale *mgl32.Vec2) mgl32.Mat3 {
	if scale == nil {
		return mgl32.Ident3()
	}
	return mgl32.Scale2D(scale.X(), scale.Y())
}
