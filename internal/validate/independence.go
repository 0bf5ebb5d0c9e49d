package validate

import (
	"sort"

	"github.com/pvershinin/trustgate/internal/model"
	"github.com/pvershinin/trustgate/internal/util"
)

// IndependenceChecker determines whether a set of sources spans distinct
// network domains. Two sources sharing a host count as one domain even
// with different paths.
type IndependenceChecker struct {
	minDomains          int
	collapseRegistrable bool
}

// NewIndependenceChecker creates a checker from the given rules
func NewIndependenceChecker(rules *model.IndependenceRules) *IndependenceChecker {
	if rules == nil {
		rules = &model.DefaultConfig().Rules.Independence
	}
	min := rules.MinDomains
	if min <= 0 {
		min = 2
	}
	return &IndependenceChecker{
		minDomains:          min,
		collapseRegistrable: rules.CollapseRegistrable,
	}
}

// Check collects the set of distinct domains among the sources' hosts and
// reports independence when at least minDomains are present. Unparseable
// URLs contribute the empty host, which counts as a single shared domain.
func (c *IndependenceChecker) Check(sources []model.Source) model.IndependenceResult {
	seen := make(map[string]struct{}, len(sources))
	for _, source := range sources {
		domain := util.HostOf(source.URL)
		if c.collapseRegistrable {
			domain = util.RegistrableDomain(domain)
		}
		seen[domain] = struct{}{}
	}

	unique := make([]string, 0, len(seen))
	for domain := range seen {
		unique = append(unique, domain)
	}
	sort.Strings(unique)

	return model.IndependenceResult{
		IsIndependent: len(unique) >= c.minDomains,
		UniqueDomains: unique,
		TotalSources:  len(sources),
	}
}
