package graphics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beevik/etree"
	"github.com/kpango/glg"

	"github.com/rking788/ambientcg-vendor/ambientcg"
)

// A DAEWriter is responsible for writing an assembled material as a Collada
// (.dae) material/effect library for hosts that consume COLLADA assets.
type DAEWriter struct {
	Path string
}

// WriteMaterial writes the image, material, and effect libraries for the
// channels of m that exist on disk. Channel files are referenced by name;
// samplers tile on both axes since the packs are authored to repeat.
func (dae *DAEWriter) WriteMaterial(m ambientcg.Material, set ambientcg.ChannelSet, exists ambientcg.ExistsFunc) error {
	if exists == nil {
		exists = ambientcg.PathExists
	}

	var present []ambientcg.Channel
	for _, c := range ambientcg.Channels {
		if exists(set.Path(c)) {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return errors.New("no channel files found, nothing to export")
	}

	doc, colladaRoot := NewColladaDoc()

	writeAssetElement(colladaRoot)
	writeImageLibraryElement(colladaRoot, set, present)

	materialID := m.Stem()
	materialEffectName := fmt.Sprintf("effect_%s", materialID)
	writeLibraryMaterials(colladaRoot, materialID, materialEffectName)
	writeLibraryEffects(colladaRoot, materialEffectName, present)

	doc.Indent(2)

	outF, err := os.OpenFile(dae.Path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		glg.Error(err)
		return err
	}
	defer outF.Close()

	_, err = doc.WriteTo(outF)
	return err
}

// NewColladaDoc will open a new XML document and write the correct header
// metadata and return the root XML element.
func NewColladaDoc() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	colladaRoot := doc.CreateElement("COLLADA")
	colladaRoot.CreateAttr("xmlns", "http://www.collada.org/2005/11/COLLADASchema")
	colladaRoot.CreateAttr("version", "1.4.1")

	return doc, colladaRoot
}

func writeAssetElement(parent *etree.Element) {
	asset := parent.CreateElement("asset")
	asset.CreateElement("contributor").CreateElement("publishing_tool").CreateCharData("AmbientCG Material Vendor")

	timestamp := time.Now().UTC().Format(time.RFC3339)
	asset.CreateElement("created").CreateCharData(timestamp)
	asset.CreateElement("modified").CreateCharData(timestamp)
	asset.CreateElement("up_axis").CreateCharData("Y_UP")
}

func writeImageLibraryElement(parent *etree.Element, set ambientcg.ChannelSet, present []ambientcg.Channel) {
	libImages := parent.CreateElement("library_images")

	for _, c := range present {
		img := libImages.CreateElement("image")
		img.CreateAttr("id", imageID(c))
		initFrom := img.CreateElement("init_from")
		initFrom.CreateCharData(fmt.Sprintf("./%s", filepath.Base(set.Path(c))))
	}
}

func writeLibraryMaterials(parent *etree.Element, materialID, materialEffectName string) {
	libraryMaterials := parent.CreateElement("library_materials")

	material := libraryMaterials.CreateElement("material")
	material.CreateAttr("id", materialID)
	material.CreateAttr("name", materialID)
	material.CreateElement("instance_effect").CreateAttr("url", fmt.Sprintf("#%s", materialEffectName))
}

func writeLibraryEffects(parent *etree.Element, materialEffectName string, present []ambientcg.Channel) {
	libraryEffects := parent.CreateElement("library_effects")

	effect := libraryEffects.CreateElement("effect")
	effect.CreateAttr("id", materialEffectName)

	profileCommon := effect.CreateElement("profile_COMMON")

	// One surface/sampler pair per channel file.
	for _, c := range present {
		imgSurfNewParam := profileCommon.CreateElement("newparam")
		imgSurfNewParam.CreateAttr("sid", surfaceID(c))

		surface := imgSurfNewParam.CreateElement("surface")
		surface.CreateAttr("type", "2D")
		surface.CreateElement("init_from").CreateCharData(imageID(c))

		samplerNewParam := profileCommon.CreateElement("newparam")
		samplerNewParam.CreateAttr("sid", samplerID(c))

		sampler2D := samplerNewParam.CreateElement("sampler2D")
		sampler2D.CreateElement("source").CreateCharData(surfaceID(c))
		sampler2D.CreateElement("wrap_s").CreateCharData("WRAP")
		sampler2D.CreateElement("wrap_t").CreateCharData("WRAP")
		sampler2D.CreateElement("minfilter").CreateCharData("LINEAR")
		sampler2D.CreateElement("magfilter").CreateCharData("LINEAR")
		sampler2D.CreateElement("mipfilter").CreateCharData("LINEAR")
	}

	technique := profileCommon.CreateElement("technique")
	technique.CreateAttr("sid", "common")

	blinn := technique.CreateElement("blinn")

	blinnAmbient := blinn.CreateElement("ambient")
	writeChannelValue(blinnAmbient, present, ambientcg.ChannelAmbientOcclusion, "1 1 1 1")

	blinnDiffuse := blinn.CreateElement("diffuse")
	writeChannelValue(blinnDiffuse, present, ambientcg.ChannelColor, "1 1 1 1")

	blinnSpecular := blinn.CreateElement("specular")
	blinnSpecular.CreateElement("color").CreateCharData("0 0 0 1")

	blinnTransparent := blinn.CreateElement("transparent")
	blinnTransparent.CreateAttr("opaque", "A_ONE")
	blinnTransparent.CreateElement("color").CreateCharData("1 1 1 1")

	blinnTransparency := blinn.CreateElement("transparency")
	blinnTransparency.CreateElement("float").CreateCharData("1")

	blinnIndexOfRefraction := blinn.CreateElement("index_of_refraction")
	blinnIndexOfRefraction.CreateElement("float").CreateCharData("1")

	// The remaining channels have no blinn slot; they ride along in an
	// extra technique for host-side importers to inspect.
	extra := effect.CreateElement("extra")
	extraTech := extra.CreateElement("technique")
	for _, c := range present {
		switch c {
		case ambientcg.ChannelAmbientOcclusion, ambientcg.ChannelColor:
			continue
		}
		channelElem := extraTech.CreateElement(c.String())
		texture := channelElem.CreateElement("texture")
		texture.CreateAttr("texture", samplerID(c))
		texture.CreateAttr("texcoord", "CHANNEL0")
	}
}

// writeChannelValue writes a texture reference when the channel file is
// present, otherwise a constant color fallback.
func writeChannelValue(parent *etree.Element, present []ambientcg.Channel, c ambientcg.Channel, fallback string) {
	for _, p := range present {
		if p == c {
			texture := parent.CreateElement("texture")
			texture.CreateAttr("texture", samplerID(c))
			texture.CreateAttr("texcoord", "CHANNEL0")
			return
		}
	}
	parent.CreateElement("color").CreateCharData(fallback)
}

func imageID(c ambientcg.Channel) string   { return fmt.Sprintf("image_%s", c) }
func surfaceID(c ambientcg.Channel) string { return fmt.Sprintf("%s_surface", imageID(c)) }
func samplerID(c ambientcg.Channel) string { return fmt.Sprintf("%s_sampler", imageID(c)) }
