package ambientcg

import "fmt"

// Resolution is an AmbientCG texture resolution tier. The zero value is 1K,
// the smallest tier published for every material on the site.
type Resolution int

const (
	Resolution1K Resolution = iota
	Resolution2K
	Resolution4K
	Resolution8K
	Resolution12K
	Resolution16K
)

var resolutionTags = [...]string{"1K", "2K", "4K", "8K", "12K", "16K"}

func (r Resolution) String() string {
	if r < Resolution1K || r > Resolution16K {
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
	return resolutionTags[r]
}

// NextSmaller returns the immediate predecessor tier. The smallest tier has
// no predecessor and fails with ErrNoSmallerResolution.
func (r Resolution) NextSmaller() (Resolution, error) {
	if r <= Resolution1K {
		return Resolution1K, ErrNoSmallerResolution
	}
	return r - 1, nil
}

// ParseResolution maps a tier tag ("1K" through "16K") to its Resolution.
func ParseResolution(tag string) (Resolution, error) {
	for i, t := range resolutionTags {
		if t == tag {
			return Resolution(i), nil
		}
	}
	return Resolution1K, fmt.Errorf("unknown resolution tag %q", tag)
}
