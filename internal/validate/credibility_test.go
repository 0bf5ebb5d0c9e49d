package validate

import (
	"testing"

	"github.com/pvershinin/trustgate/internal/model"
)

func TestCredibilityClassifier_TierOf(t *testing.T) {
	classifier := NewCredibilityClassifier(nil)

	tests := []struct {
		url      string
		expected model.Tier
		desc     string
	}{
		{"https://gugong.tmall.com", model.TierA, "tmall storefront subdomain"},
		{"https://item.jd.com/123.html", model.TierA, "jd product page"},
		{"https://www.beijing.gov.cn/zhengce", model.TierA, "government site"},
		{"https://36kr.com/p/123", model.TierB, "tech media"},
		{"https://finance.sina.com.cn/x", model.TierB, "portal subdomain"},
		{"https://www.zhihu.com/question/1", model.TierC, "Q&A platform"},
		{"https://v.douyin.com/abc", model.TierC, "social platform"},
		{"https://example.com/1", model.TierD, "unknown domain"},
		{"", model.TierD, "empty URL"},
		{"://bad", model.TierD, "malformed URL"},
		{"tmall.com", model.TierD, "scheme-less URL has no host"},
		{"HTTPS://GUGONG.TMALL.COM", model.TierA, "case-insensitive"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := classifier.TierOf(tt.url); got != tt.expected {
				t.Errorf("TierOf(%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}

// Tiers are tested in order A, B, C: a host matching an earlier tier
// never falls through to a later one.
func TestCredibilityClassifier_TierPriority(t *testing.T) {
	rules := &model.CredibilityRules{
		TierA: []string{"shared.example"},
		TierB: []string{"shared.example"},
	}
	classifier := NewCredibilityClassifier(rules)

	if got := classifier.TierOf("https://shared.example/x"); got != model.TierA {
		t.Errorf("expected tier A for domain listed in A and B, got %v", got)
	}
}

func TestCredibilityClassifier_Deterministic(t *testing.T) {
	classifier := NewCredibilityClassifier(nil)
	for i := 0; i < 3; i++ {
		if got := classifier.TierOf("https://unknown.site/x"); got != model.TierD {
			t.Fatalf("run %d: got %v, want D", i, got)
		}
	}
}
