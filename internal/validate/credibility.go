package validate

import (
	"strings"

	"github.com/pvershinin/trustgate/internal/model"
	"github.com/pvershinin/trustgate/internal/util"
)

// CredibilityClassifier maps source URLs to trust tiers using the
// configured per-tier domain lists
type CredibilityClassifier struct {
	tiers []tierDomains
}

type tierDomains struct {
	tier    model.Tier
	domains []string
}

// NewCredibilityClassifier creates a classifier from the given rules.
// Domain entries are lowercased once at construction; matching is
// case-insensitive substring containment against the host.
func NewCredibilityClassifier(rules *model.CredibilityRules) *CredibilityClassifier {
	if rules == nil {
		rules = &model.DefaultConfig().Rules.Credibility
	}

	return &CredibilityClassifier{
		tiers: []tierDomains{
			{tier: model.TierA, domains: lowerAll(rules.TierA)},
			{tier: model.TierB, domains: lowerAll(rules.TierB)},
			{tier: model.TierC, domains: lowerAll(rules.TierC)},
		},
	}
}

// TierOf classifies a URL into a credibility tier. Total and
// deterministic: every input, including malformed and empty URLs, yields
// exactly one tier, and unknown hosts degrade to D rather than erroring.
func (c *CredibilityClassifier) TierOf(rawURL string) model.Tier {
	host := util.HostOf(rawURL)
	if host == "" {
		return model.TierD
	}

	// Tiers are checked in order A, B, C; first match wins
	for _, td := range c.tiers {
		for _, domain := range td.domains {
			if strings.Contains(host, domain) {
				return td.tier
			}
		}
	}

	return model.TierD
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
