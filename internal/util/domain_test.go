package util

import "testing"

func TestHostOf(t *testing.T) {
	tests := []struct {
		rawURL   string
		expected string
		desc     string
	}{
		{"https://gugong.tmall.com", "gugong.tmall.com", "plain host"},
		{"https://www.dpm.org.cn/official-site", "www.dpm.org.cn", "host with path"},
		{"https://example.com:8443/x", "example.com", "port stripped"},
		{"HTTPS://GUGONG.TMALL.COM", "gugong.tmall.com", "lowercased"},
		{"tmall.com/shop", "", "scheme-less has no host"},
		{"://bad", "", "malformed"},
		{"", "", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := HostOf(tt.rawURL); got != tt.expected {
				t.Errorf("HostOf(%q) = %q, want %q", tt.rawURL, got, tt.expected)
			}
		})
	}
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		host     string
		expected string
		desc     string
	}{
		{"gugong.tmall.com", "tmall.com", "subdomain folded"},
		{"www.beijing.gov.cn", "beijing.gov.cn", "gov.cn is a public suffix"},
		{"example.com", "example.com", "already registrable"},
		{"localhost", "localhost", "undeterminable returned unchanged"},
		{"", "", "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := RegistrableDomain(tt.host); got != tt.expected {
				t.Errorf("RegistrableDomain(%q) = %q, want %q", tt.host, got, tt.expected)
			}
		})
	}
}
