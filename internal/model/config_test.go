package model

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rules.Independence.MinDomains < 2 {
		t.Errorf("min domains = %d, corroboration needs at least 2", cfg.Rules.Independence.MinDomains)
	}
	if cfg.Rules.Brand.MinSources < 1 {
		t.Errorf("min sources = %d", cfg.Rules.Brand.MinSources)
	}
	if !cfg.Verification.Strict {
		t.Error("strict gating must be the default")
	}
	if cfg.Verification.PreviewBytes <= 0 {
		t.Errorf("preview bytes = %d", cfg.Verification.PreviewBytes)
	}
	if cfg.Concurrency.Workers < 1 {
		t.Errorf("workers = %d", cfg.Concurrency.Workers)
	}
	if len(cfg.Rules.Credibility.TierA) == 0 ||
		len(cfg.Rules.Hallucination.TemplatePatterns) == 0 ||
		len(cfg.Rules.Hallucination.VagueWords) == 0 {
		t.Error("default rule lists must not be empty")
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	original := DefaultConfig()
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Rules.Independence.MinDomains != original.Rules.Independence.MinDomains {
		t.Errorf("min domains = %d", decoded.Rules.Independence.MinDomains)
	}
	if decoded.Cache.TTL != original.Cache.TTL {
		t.Errorf("ttl = %v, want %v", decoded.Cache.TTL, original.Cache.TTL)
	}
	if len(decoded.Rules.Hallucination.VagueWords) != len(original.Rules.Hallucination.VagueWords) {
		t.Error("vague word list not round-tripped")
	}
	if decoded.Rules.Policy.GovPattern != original.Rules.Policy.GovPattern {
		t.Errorf("gov pattern = %q", decoded.Rules.Policy.GovPattern)
	}
}
