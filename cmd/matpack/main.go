package main

import (
	"flag"
	"image/jpeg"
	"os"

	"github.com/kpango/glg"

	"github.com/rking788/ambientcg-vendor/ambientcg"
	"github.com/rking788/ambientcg-vendor/graphics"
)

func main() {
	root := flag.String("root", "materials", "The directory holding the AmbientCG material pack folders")
	name := flag.String("name", "", "The AmbientCG material name, for example Bricks001")
	resolution := flag.String("resolution", "1K", "The requested resolution tier (1K, 2K, 4K, 8K, 12K, 16K)")
	subfolder := flag.String("subfolder", "", "Optional subfolder between the root and the material directory")
	outPrefix := flag.String("out", "", "The prefix of the combined map file that will be written")
	noNegotiation := flag.Bool("no-negotiation", false, "Disable fallback to smaller resolutions")
	withDAE := flag.Bool("dae", false, "Also write a COLLADA material library next to the combined map")

	flag.Parse()

	if *name == "" || *outPrefix == "" {
		glg.Error("Forgot to specify a material name or an output prefix")
		return
	}

	tier, err := ambientcg.ParseResolution(*resolution)
	if err != nil {
		glg.Errorf("Invalid resolution: %s", err.Error())
		return
	}

	m := ambientcg.Material{
		Name:       *name,
		Resolution: tier,
		Subfolder:  *subfolder,
	}

	if !*noNegotiation {
		m, err = ambientcg.Negotiate(m, *root, nil)
		if err != nil {
			glg.Errorf("Error negotiating a resolution for %s: %s", *name, err.Error())
			return
		}
		glg.Infof("Resolved %s to %s", m.Name, m.Resolution)
	}

	set := ambientcg.BuildChannelPaths(m, *root)
	for _, c := range ambientcg.Channels {
		glg.Infof("Channel %s: exists=%v", c, ambientcg.PathExists(set.Path(c)))
	}

	packed, err := graphics.PackMetallicRoughness(set.Roughness, set.Metalness,
		ambientcg.PathExists(set.Roughness), ambientcg.PathExists(set.Metalness))
	if err != nil {
		glg.Errorf("Error packing material %s: %s", m.Name, err.Error())
		return
	}

	switch packed.Kind {
	case graphics.PackedSynthesized:
		if err := writeCombinedMap(packed, *outPrefix); err != nil {
			glg.Errorf("Error writing the combined map: %s", err.Error())
			return
		}
	case graphics.PackedFile:
		glg.Infof("Only one source channel exists, pass %s through unmodified", packed.Path)
	default:
		glg.Warnf("Neither metalness nor roughness exists for %s, nothing to pack", m.Name)
	}

	if *withDAE {
		dae := &graphics.DAEWriter{Path: *outPrefix + ".dae"}
		if err := dae.WriteMaterial(m, set, nil); err != nil {
			glg.Errorf("Error writing the COLLADA material: %s", err.Error())
		}
	}
}

func writeCombinedMap(packed graphics.PackedTexture, prefix string) error {

	outF, err := os.OpenFile(prefix+"_metallicRoughness.jpg", os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer outF.Close()

	return jpeg.Encode(outF, packed.Image, nil)
}
