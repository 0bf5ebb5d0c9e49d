package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SourceType classifies where a source comes from
type SourceType string

const (
	SourceOfficial  SourceType = "official"  // Brand-owned or government site
	SourceEcommerce SourceType = "ecommerce" // Marketplace storefront
	SourceMedia     SourceType = "media"     // Press or tech media
	SourceSocial    SourceType = "social"    // Social / UGC platform
	SourceUnknown   SourceType = "unknown"   // Not yet classified
)

// Source is a cited origin for a record's facts
type Source struct {
	URL  string     `json:"url" yaml:"url"`
	Type SourceType `json:"type,omitempty" yaml:"type,omitempty"`
}

// Record is a raw research record (a brand case, a policy document, a KPI
// claim). There is no fixed schema: checks inspect only the fields they
// know about, and unknown fields pass through untouched. Verdicts are
// attached out of band; validation never mutates a record.
type Record map[string]any

// Has reports whether the key is present, regardless of value
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Str returns the string value for key, or "" when absent or not a string
func (r Record) Str(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Name returns the record's display name: "name" preferred, "title" as fallback
func (r Record) Name() string {
	if s := r.Str("name"); s != "" {
		return s
	}
	return r.Str("title")
}

// Truthy reports whether the value under key is set and non-zero
func (r Record) Truthy(key string) bool {
	switch v := r[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && !strings.EqualFold(v, "false")
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// Sources returns the record's source list. Records arrive from JSON or
// YAML decoding as generic maps, so both typed and untyped shapes are
// accepted; entries that are not source-shaped are skipped.
func (r Record) Sources() []Source {
	switch raw := r["sources"].(type) {
	case []Source:
		return raw
	case []any:
		out := make([]Source, 0, len(raw))
		for _, item := range raw {
			switch s := item.(type) {
			case Source:
				out = append(out, s)
			case map[string]any:
				var src Source
				if u, ok := s["url"].(string); ok {
					src.URL = u
				}
				if t, ok := s["type"].(string); ok {
					src.Type = SourceType(t)
				}
				out = append(out, src)
			}
		}
		return out
	}
	return nil
}

// KPI returns the record's KPI mapping, or nil when absent
func (r Record) KPI() map[string]any {
	if v, ok := r["kpi"].(map[string]any); ok {
		return v
	}
	return nil
}

// Serialized returns the record as canonical JSON (map keys sorted by
// encoding/json), used for content scans, cache keys and previews
func (r Record) Serialized() string {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(r))
	}
	return string(data)
}
