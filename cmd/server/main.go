package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/kpango/glg"

	"github.com/rking788/ambientcg-vendor/ambientcg"
	"github.com/rking788/ambientcg-vendor/asset"
	"github.com/rking788/ambientcg-vendor/graphics"
)

var (
	config   = ambientcg.DefaultConfig()
	registry = asset.NewRegistry()
	importer *graphics.Importer

	// manifest holds the named descriptors loaded at startup; the DB is
	// consulted for names it does not cover.
	manifest = map[string]ambientcg.Material{}
	useDB    bool
)

func main() {

	materialsPath := flag.String("materials", "materials", "The directory holding the AmbientCG material pack folders")
	manifestPath := flag.String("manifest", "", "Optional path to a JSON manifest of named material descriptors")
	noNegotiation := flag.Bool("no-negotiation", false, "Disable fallback to smaller resolutions when the requested one is missing")
	flag.Parse()

	config.MaterialsPath = *materialsPath
	config.ResolutionNegotiation = !*noNegotiation
	importer = graphics.NewImporter(config, registry, nil)

	if *manifestPath != "" {
		materials, err := ambientcg.LoadManifest(*manifestPath)
		if err != nil {
			glg.Errorf("Failed to load the material manifest: %s", err.Error())
			return
		}
		for _, m := range materials {
			manifest[m.Name] = m
		}
		glg.Infof("Loaded %d material definitions from %s", len(materials), *manifestPath)
	}

	useDB = os.Getenv("DATABASE_URL") != ""

	port := os.Getenv("PORT")
	if port == "" {
		glg.Error("Forgot to specify a port")
		return
	}

	router := mux.NewRouter()
	router.HandleFunc("/materials/{name}/{resolution}", GetMaterial).Methods("GET")
	router.HandleFunc("/materials/{name}/{resolution}/packed", GetPackedMap).Methods("GET")

	glg.Error(http.ListenAndServe(":"+port, router))
}

// lookupMaterial finds the descriptor registered for name, falling back to
// the definition database and finally to a bare descriptor.
func lookupMaterial(name string) ambientcg.Material {
	if m, ok := manifest[name]; ok {
		return m
	}

	if useDB {
		m, err := ambientcg.GetMaterialDefinition(name)
		if err == nil {
			return m
		}
		glg.Warnf("No DB definition for material %s: %s", name, err.Error())
	}

	return ambientcg.Material{Name: name}
}
