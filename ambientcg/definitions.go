package ambientcg

import (
	"github.com/rking788/ambientcg-vendor/db"
)

// GetMaterialDefinition looks up the manifest JSON stored for name in the
// definition database and parses it into a Material descriptor.
func GetMaterialDefinition(name string) (Material, error) {
	conn, err := db.GetMaterialDBConnection()
	if err != nil {
		return Material{}, err
	}

	definition, err := conn.GetMaterialDefinition(name)
	if err != nil {
		return Material{}, err
	}

	return ParseMaterialDefinition([]byte(definition))
}
