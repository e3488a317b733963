package config

import "github.com/cockroachdb/errors"

// RegionConfig holds the Google News locale parameters for one region.
type RegionConfig struct {
	Hl   string // Host language
	Gl   string // Country code
	Ceid string // Edition, "<country>:<language>"
}

// NewsRegions maps region codes to their configurations
var NewsRegions = map[string]RegionConfig{
	"us":    {"en-US", "US", "US:en"},
	"uk":    {"en-GB", "GB", "GB:en"},
	"in-en": {"en-IN", "IN", "IN:en"},
	"in-hi": {"hi-IN", "IN", "IN:hi"},
	"au":    {"en-AU", "AU", "AU:en"},
	"nz":    {"en-NZ", "NZ", "NZ:en"},
	"za":    {"en-ZA", "ZA", "ZA:en"},
	"pk":    {"en-PK", "PK", "PK:en"},
}

// NewsRegion looks up a region code.
func NewsRegion(code string) (RegionConfig, error) {
	region, ok := NewsRegions[code]
	if !ok {
		return RegionConfig{}, errors.Newf("unknown news region %q", code)
	}
	return region, nil
}
