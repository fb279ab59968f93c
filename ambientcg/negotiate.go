package ambientcg

import (
	"fmt"
	"os"

	"github.com/kpango/glg"
)

// ExistsFunc is the path-existence oracle consulted during negotiation and
// channel discovery. The default checks the local filesystem.
type ExistsFunc func(path string) bool

// PathExists is the default oracle backed by os.Stat.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Negotiate resolves the effective resolution for m by walking the tier
// list downward from the requested tier until a tier whose pack directory
// exists under materialsRoot is found. Name, subfolder, and UV scale pass
// through untouched. The descent is strictly monotonic: tiers are never
// skipped and never searched upward. When the list is exhausted the error
// wraps ErrNoSmallerResolution.
//
// Negotiating a descriptor whose directory already exists returns it
// unchanged, so the operation is idempotent.
func Negotiate(m Material, materialsRoot string, exists ExistsFunc) (Material, error) {
	if exists == nil {
		exists = PathExists
	}

	for {
		if exists(m.Dir(materialsRoot)) {
			return m, nil
		}

		smaller, err := m.Resolution.NextSmaller()
		if err != nil {
			return Material{}, fmt.Errorf("material %s: %w", m.Name, err)
		}

		glg.Debugf("Material %s missing at %s, trying %s", m.Name, m.Resolution, smaller)
		m.Resolution = smaller
	}
}
