package studygen

import (
	"fmt"
	"math/rand"
)

// word pools for synthetic domain names, so generated studies look like
// the real one without needing a system dictionary
var (
	domainPrefixes = []string{
		"alpha", "bright", "cloud", "daily", "east", "fast", "green",
		"hyper", "indie", "jolly", "kinetic", "lunar", "metro", "nova",
		"open", "pixel", "quick", "rapid", "solar", "turbo", "ultra",
		"vivid", "west", "zen",
	}
	domainSuffixes = []string{
		"news", "shop", "mail", "cast", "base", "hub", "lab", "zone",
		"works", "press", "wiki", "forum", "media", "store", "board",
		"watch", "feed", "desk",
	}
	domainTLDs = []string{".com", ".org", ".net", ".io", ".de"}
)

// generateDomains produces count unique synthetic page URLs. Roughly a
// quarter of them are plain http, the rest https, which leaves the
// secureConnectionStart column partially populated like real data.
func generateDomains(count int, rng *rand.Rand) []string {
	seen := make(map[string]bool, count)
	domains := make([]string, 0, count)

	for len(domains) < count {
		base := domainPrefixes[rng.Intn(len(domainPrefixes))] +
			domainSuffixes[rng.Intn(len(domainSuffixes))]
		tld := domainTLDs[rng.Intn(len(domainTLDs))]

		name := base + tld
		if seen[name] {
			// pools exhausted for short names, disambiguate with a counter
			name = fmt.Sprintf("%s%d%s", base, len(domains), tld)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		scheme := "https"
		if rng.Intn(4) == 0 {
			scheme = "http"
		}
		domains = append(domains, fmt.Sprintf("%s://www.%s", scheme, name))
	}

	return domains
}
