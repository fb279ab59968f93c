package ambientcg

const defaultMaterialsPath = "materials"

// Config carries the importer settings. It is built once at startup and
// passed by value into every call that needs it; there is no ambient global
// state to initialize in order.
type Config struct {
	// MaterialsPath is the directory holding the material pack folders.
	MaterialsPath string

	// ResolutionNegotiation enables fallback to smaller tiers when the
	// requested tier's directory is missing on disk. When disabled, the
	// requested tier is used as-is and missing files surface as absent
	// channels rather than errors.
	ResolutionNegotiation bool
}

// DefaultConfig returns the documented defaults: the "materials" directory
// with negotiation enabled.
func DefaultConfig() Config {
	return Config{
		MaterialsPath:         defaultMaterialsPath,
		ResolutionNegotiation: true,
	}
}

// Normalize fills defaulted fields on a copy of c.
func (c Config) Normalize() Config {
	if c.MaterialsPath == "" {
		c.MaterialsPath = defaultMaterialsPath
	}
	return c
}
