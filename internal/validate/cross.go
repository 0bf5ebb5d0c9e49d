package validate

import (
	"fmt"
	"strings"

	"github.com/pvershinin/trustgate/internal/model"
	"github.com/pvershinin/trustgate/internal/util"
)

// CrossValidator verifies an entity against multiple independent sources.
// It composes the credibility classifier, the independence checker and
// per-entity-type pattern rules into a single verdict with itemized
// checks.
type CrossValidator struct {
	classifier   *CredibilityClassifier
	independence *IndependenceChecker
	brand        model.BrandRules
	policy       model.PolicyRules
}

// NewCrossValidator creates a cross validator from the given rules
func NewCrossValidator(rules *model.RulesConfig) *CrossValidator {
	if rules == nil {
		rules = &model.DefaultConfig().Rules
	}
	return &CrossValidator{
		classifier:   NewCredibilityClassifier(&rules.Credibility),
		independence: NewIndependenceChecker(&rules.Independence),
		brand:        rules.Brand,
		policy:       rules.Policy,
	}
}

// ValidateBrand cross-validates a brand entity. All four checks must
// pass: enough sources, independent domains, at least one tier A/B
// source, and a name free of generic template phrasing. Every failing
// check contributes one error, so a rejected brand names each failed
// requirement.
func (v *CrossValidator) ValidateBrand(name string, sources []model.Source) model.Verdict {
	var verdict model.Verdict

	enough := len(sources) >= v.brand.MinSources
	verdict.SetCheck(model.CheckSourceCount, enough)
	if !enough {
		verdict.Errors = append(verdict.Errors,
			fmt.Sprintf("need at least %d sources, have %d", v.brand.MinSources, len(sources)))
	}

	independence := v.independence.Check(sources)
	verdict.Independence = &independence
	verdict.SetCheck(model.CheckIndependence, independence.IsIndependent)
	if !independence.IsIndependent {
		verdict.Errors = append(verdict.Errors,
			fmt.Sprintf("sources are not independent: %d distinct domains", len(independence.UniqueDomains)))
	}

	tiers := make([]model.Tier, len(sources))
	credible := false
	for i, source := range sources {
		tiers[i] = v.classifier.TierOf(source.URL)
		if tiers[i] == model.TierA || tiers[i] == model.TierB {
			credible = true
		}
	}
	verdict.Tiers = tiers
	verdict.SetCheck(model.CheckCredibleSource, credible)
	if !credible {
		verdict.Errors = append(verdict.Errors, "no tier A or B source cited")
	}

	lowerName := strings.ToLower(name)
	notTemplate := true
	for _, pattern := range v.brand.ForbiddenPatterns {
		if strings.Contains(lowerName, strings.ToLower(pattern)) {
			notTemplate = false
			verdict.Errors = append(verdict.Errors,
				fmt.Sprintf("name matches generic template phrase %q", pattern))
		}
	}
	verdict.SetCheck(model.CheckNotTemplate, notTemplate)

	verdict.Finalize()
	return verdict
}

// ValidatePolicy cross-validates a policy record. Validity is looser than
// for brands: either an official document number or a government-hosted
// source suffices. The remaining checks are informational and surface as
// warnings only.
func (v *CrossValidator) ValidatePolicy(record model.Record) model.Verdict {
	var verdict model.Verdict

	hasDoc := record.Str("doc_number") != ""
	verdict.SetCheck(model.CheckDocNumber, hasDoc)

	sourceURL := record.Str("source_url")
	hasURL := sourceURL != ""
	verdict.SetCheck(model.CheckSourceURL, hasURL)

	host := util.HostOf(sourceURL)
	isGov := host != "" && v.policy.GovPattern != "" &&
		strings.Contains(host, strings.ToLower(v.policy.GovPattern))
	verdict.SetCheck(model.CheckGovSource, isGov)

	// Only the first two stock phrases participate, conjunctively. The
	// remaining entries of the configured list are ignored on purpose:
	// a single stock phrase is common in legitimately specific titles.
	title := record.Str("title")
	notTemplate := true
	if len(v.policy.TemplatePatterns) >= 2 {
		notTemplate = !(strings.Contains(title, v.policy.TemplatePatterns[0]) &&
			strings.Contains(title, v.policy.TemplatePatterns[1]))
	}
	verdict.SetCheck(model.CheckNotTemplate, notTemplate)

	if !hasDoc && !isGov {
		verdict.Errors = append(verdict.Errors,
			"policy requires an official document number or a government-hosted source")
	} else {
		if !hasDoc {
			verdict.Warnings = append(verdict.Warnings, "no official document number")
		}
		if !hasURL {
			verdict.Warnings = append(verdict.Warnings, "no source URL")
		} else if !isGov {
			verdict.Warnings = append(verdict.Warnings, "source URL is not government-hosted")
		}
		if !notTemplate {
			verdict.Warnings = append(verdict.Warnings, "title matches stock policy phrasing")
		}
	}

	verdict.Finalize()
	return verdict
}
