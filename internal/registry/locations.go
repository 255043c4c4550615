package registry

import (
	"context"
	"slices"
	"strings"

	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

var _ chances.LocationResolver = (*Registry)(nil)

// location finds the record of a location. A sub-location such as
// "UndergroundMine/20" falls back to its parent's record.
func (s *Snapshot) location(name string) (domain.LocationInfo, bool) {
	for name != "" {
		if info, ok := s.locations[name]; ok {
			return info, true
		}
		idx := strings.LastIndexByte(name, '/')
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	return domain.LocationInfo{}, false
}

// LocationOverride returns the override content configured for a location
func (r *Registry) LocationOverride(ctx context.Context, location string) (chances.LocationOverride, bool) {
	info, ok := r.Current(ctx).location(location)
	if !ok || info.OverrideLocation == "" {
		return chances.LocationOverride{}, false
	}
	return chances.LocationOverride{Location: info.OverrideLocation, Chance: info.OverrideChance}, true
}

// LocationNames returns the names a location's fish are listed under, the
// location itself first. Unknown locations have no names.
func (r *Registry) LocationNames(ctx context.Context, location string) []string {
	info, ok := r.Current(ctx).location(location)
	if !ok || len(info.Names) == 0 {
		return nil
	}
	names := []string{location}
	for _, n := range info.Names {
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	return names
}

// LocationCount is the number of locations with records
func (s *Snapshot) LocationCount() int {
	return len(s.locations)
}
