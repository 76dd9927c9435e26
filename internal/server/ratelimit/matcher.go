package ratelimit

import (
	"slices"
	"strings"
)

// MatchTier returns the first tier covering the request, or nil when the
// default limit applies. Tiers are checked in order.
func MatchTier(path, method string, tiers []Tier) *Tier {
	for i := range tiers {
		tier := &tiers[i]
		if len(tier.Methods) > 0 && !slices.Contains(tier.Methods, method) {
			continue
		}
		if matchPrefix(tier.Prefix, path) {
			return tier
		}
	}
	return nil
}

func matchPrefix(prefix, path string) bool {
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(path, prefix) && len(path) > len(prefix)
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
