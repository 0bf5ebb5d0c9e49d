package util

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// HostOf extracts the lowercase network host from a raw URL, without the
// port. Malformed, scheme-less or empty URLs yield "" rather than an
// error; credibility and independence checks degrade on sparse input
// instead of failing.
func HostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := parsed.Host
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return strings.ToLower(host)
}

// RegistrableDomain folds a host to its registrable domain (eTLD+1), so
// shop.example.com and www.example.com compare equal. Hosts with no
// determinable registrable domain are returned unchanged.
func RegistrableDomain(host string) string {
	if host == "" {
		return ""
	}
	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain
	}
	return host
}
