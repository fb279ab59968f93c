package ambientcg

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FormatTag is the encoding tag baked into AmbientCG directory and file
	// stems. Only the JPG packs are supported.
	FormatTag = "JPG"

	// FileExt is the extension of every channel file in a JPG pack.
	FileExt = ".jpg"
)

// Channel is one PBR texture map within a material pack.
type Channel int

const (
	ChannelAmbientOcclusion Channel = iota
	ChannelColor
	ChannelDisplacement
	ChannelMetalness
	ChannelNormalGL
	ChannelRoughness
)

var channelSuffixes = [...]string{
	"_AmbientOcclusion",
	"_Color",
	"_Displacement",
	"_Metalness",
	"_NormalGL",
	"_Roughness",
}

// Channels lists every channel in pack order.
var Channels = [...]Channel{
	ChannelAmbientOcclusion,
	ChannelColor,
	ChannelDisplacement,
	ChannelMetalness,
	ChannelNormalGL,
	ChannelRoughness,
}

// Suffix returns the file stem suffix for the channel.
func (c Channel) Suffix() string { return channelSuffixes[c] }

func (c Channel) String() string { return channelSuffixes[c][1:] }

// Material describes one AmbientCG material pack to import. Values are
// cheap to copy; negotiation returns a copy with only the resolution
// replaced.
type Material struct {
	Name       string
	Resolution Resolution
	Subfolder  string
	UVScale    *mgl32.Vec2
}

// Stem returns the constructed directory and file stem, e.g.
// "Bricks001_2K-JPG".
func (m Material) Stem() string {
	return fmt.Sprintf("%s_%s-%s", m.Name, m.Resolution, FormatTag)
}

// Dir returns the directory expected to hold the channel files under the
// materials root.
func (m Material) Dir(materialsRoot string) string {
	if m.Subfolder != "" {
		return filepath.Join(materialsRoot, m.Subfolder, m.Stem())
	}
	return filepath.Join(materialsRoot, m.Stem())
}

// ChannelSet holds the six candidate channel file paths for one material at
// one resolution. Building the set never touches the filesystem.
type ChannelSet struct {
	Occlusion    string
	Color        string
	Displacement string
	Metalness    string
	NormalGL     string
	Roughness    string
}

// Path returns the candidate file path for one channel.
func (s ChannelSet) Path(c Channel) string {
	switch c {
	case ChannelAmbientOcclusion:
		return s.Occlusion
	case ChannelColor:
		return s.Color
	case ChannelDisplacement:
		return s.Displacement
	case ChannelMetalness:
		return s.Metalness
	case ChannelNormalGL:
		return s.NormalGL
	case ChannelRoughness:
		return s.Roughness
	}
	return ""
}

// BuildChannelPaths derives the six channel file paths for m. Distinct
// (name, resolution, subfolder, channel) tuples never collide.
func BuildChannelPaths(m Material, materialsRoot string) ChannelSet {
	dir := m.Dir(materialsRoot)
	stem := m.Stem()

	channelPath := func(c Channel) string {
		return filepath.Join(dir, stem+c.Suffix()+FileExt)
	}

	return ChannelSet{
		Occlusion:    channelPath(ChannelAmbientOcclusion),
		Color:        channelPath(ChannelColor),
		Displacement: channelPath(ChannelDisplacement),
		Metalness:    channelPath(ChannelMetalness),
		NormalGL:     channelPath(ChannelNormalGL),
		Roughness:    channelPath(ChannelRoughness),
	}
}
