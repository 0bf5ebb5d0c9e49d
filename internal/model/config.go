package model

import (
	"runtime"
	"time"
)

// Config is the complete trustgate configuration.
// All rule lists are data, not code: the checks only interpret what is
// configured here, so tiers and phrase lists can be extended without
// touching validation logic.
type Config struct {
	Rules        RulesConfig        `yaml:"rules" mapstructure:"rules"`
	Verification VerificationConfig `yaml:"verification" mapstructure:"verification"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// RulesConfig holds the static allow-lists and phrase lists the checks use
type RulesConfig struct {
	Credibility   CredibilityRules   `yaml:"credibility" mapstructure:"credibility"`
	Independence  IndependenceRules  `yaml:"independence" mapstructure:"independence"`
	Brand         BrandRules         `yaml:"brand" mapstructure:"brand"`
	Policy        PolicyRules        `yaml:"policy" mapstructure:"policy"`
	Hallucination HallucinationRules `yaml:"hallucination" mapstructure:"hallucination"`
}

// CredibilityRules maps domain substrings to trust tiers.
// Lookup order is A, B, C; anything unmatched is tier D.
type CredibilityRules struct {
	TierA []string `yaml:"tier_a" mapstructure:"tier_a"`
	TierB []string `yaml:"tier_b" mapstructure:"tier_b"`
	TierC []string `yaml:"tier_c" mapstructure:"tier_c"`
}

// IndependenceRules controls the distinct-domain corroboration check
type IndependenceRules struct {
	// MinDomains is the number of distinct domains required for a
	// source set to count as independent
	MinDomains int `yaml:"min_domains" mapstructure:"min_domains"`
	// CollapseRegistrable additionally folds subdomains of one
	// registrable domain together (shop.example.com == www.example.com).
	// Strictly more conservative than plain host comparison.
	CollapseRegistrable bool `yaml:"collapse_registrable" mapstructure:"collapse_registrable"`
}

// BrandRules configures brand cross validation
type BrandRules struct {
	MinSources        int      `yaml:"min_sources" mapstructure:"min_sources"`
	ForbiddenPatterns []string `yaml:"forbidden_patterns" mapstructure:"forbidden_patterns"`
}

// PolicyRules configures policy cross validation
type PolicyRules struct {
	// TemplatePatterns are stock policy-title phrases. Only the first
	// two entries participate in the not_template check, conjunctively;
	// the rest are ignored. Deliberately narrow to avoid rejecting
	// legitimately specific titles that share one stock phrase.
	TemplatePatterns []string `yaml:"template_patterns" mapstructure:"template_patterns"`
	// GovPattern marks a source host as government-operated
	GovPattern string `yaml:"gov_pattern" mapstructure:"gov_pattern"`
}

// HallucinationRules configures the fabricated-content scans
type HallucinationRules struct {
	TemplatePatterns []string `yaml:"template_patterns" mapstructure:"template_patterns"` // Placeholder phrases; any hit is fatal
	VagueWords       []string `yaml:"vague_words" mapstructure:"vague_words"`             // Hedging language; warning only
	MagnitudeMarkers []string `yaml:"magnitude_markers" mapstructure:"magnitude_markers"` // Large-number suffixes in KPI values
	SourceMarkers    []string `yaml:"source_markers" mapstructure:"source_markers"`       // Presence suppresses the unsourced-KPI warning
}

// VerificationConfig controls the gating middleware
type VerificationConfig struct {
	// Strict rejects records outright; when false, rejected records are
	// passed through tagged PENDING for manual review
	Strict bool `yaml:"strict" mapstructure:"strict"`
	// PreviewBytes bounds the record preview carried by a rejection
	PreviewBytes int `yaml:"preview_bytes" mapstructure:"preview_bytes"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers       int     `yaml:"workers" mapstructure:"workers"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"` // 0 disables throttling
	Burst         int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls verdict memoization
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose        bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeDetails bool `yaml:"include_details" mapstructure:"include_details"`
}

// DefaultConfig returns the built-in configuration. Rule lists carry both
// the original Chinese phrases and their English equivalents so records
// from either corpus are covered.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			Credibility: CredibilityRules{
				TierA: []string{"tmall.com", "jd.com", "gov.cn"},
				TierB: []string{"36kr.com", "huxiu.com", "sina.com.cn", "qq.com"},
				TierC: []string{"xiaohongshu.com", "douyin.com", "zhihu.com"},
			},
			Independence: IndependenceRules{
				MinDomains:          2,
				CollapseRegistrable: false,
			},
			Brand: BrandRules{
				MinSources: 2,
				ForbiddenPatterns: []string{
					"文创品牌", "文旅综合体", "非遗活化",
					"cultural-creative brand", "cultural-tourism complex",
					"intangible-heritage activation",
				},
			},
			Policy: PolicyRules{
				TemplatePatterns: []string{"关于促进", "关于加快", "关于推动", "关于支持"},
				GovPattern:       "gov.cn",
			},
			Hallucination: HallucinationRules{
				TemplatePatterns: []string{
					"文创品牌", "文旅综合体", "非遗活化", "数字文创", "文创街区",
					"cultural-creative brand", "cultural-tourism complex",
					"intangible-heritage activation", "digital cultural-creative",
					"cultural-creative district",
					"{city}", "{region}", "某", "示例", "测试",
				},
				VagueWords: []string{
					"可能", "大概", "也许", "估计", "应该", "据说",
					"possibly", "probably", "maybe", "estimated", "should be", "reportedly",
				},
				MagnitudeMarkers: []string{"万", "亿", "million", "billion"},
				SourceMarkers:    []string{"来源", "source"},
			},
		},
		Verification: VerificationConfig{
			Strict:       true,
			PreviewBytes: 200,
		},
		Concurrency: ConcurrencyConfig{
			Workers:       runtime.NumCPU(),
			RatePerSecond: 0,
			Burst:         5,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Output: OutputConfig{
			Verbose:        false,
			IncludeDetails: true,
		},
	}
}
