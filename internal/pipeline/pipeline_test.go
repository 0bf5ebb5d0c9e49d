package pipeline

import (
	"context"
	"testing"

	"github.com/pvershinin/trustgate/internal/model"
)

func validBrand() model.Record {
	return model.Record{
		"name":     "Forbidden City Taobao",
		"region":   "Beijing",
		"category": "museum merchandise",
		"type":     "real_brand",
		"sources": []any{
			map[string]any{"url": "https://gugong.tmall.com", "type": "ecommerce"},
			map[string]any{"url": "https://www.dpm.org.cn/official-site", "type": "official"},
		},
	}
}

func templatedBrand() model.Record {
	return model.Record{
		"name":     "Beijing Cultural-Creative Brand",
		"region":   "Beijing",
		"category": "cultural-creative IP",
		"sources": []any{
			map[string]any{"url": "https://example.com/1", "type": "unknown"},
		},
	}
}

func TestPipeline_RunBrandBatch(t *testing.T) {
	p := NewPipeline(nil)

	report, err := p.Run(context.Background(), []model.Record{validBrand(), templatedBrand()}, EntityBrand)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if report.Total != 2 || report.Passed != 1 || report.Failed != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", report.Total, report.Passed, report.Failed)
	}
	if report.PassRate != "50.0%" {
		t.Errorf("pass rate = %q, want 50.0%%", report.PassRate)
	}

	// Details correlate positionally with the input batch
	if len(report.Details) != 2 {
		t.Fatalf("details = %d, want 2", len(report.Details))
	}
	if !report.Details[0].IsValid {
		t.Errorf("record 0 should pass, got errors %v", report.Details[0].Errors)
	}
	if report.Details[1].IsValid {
		t.Error("record 1 should be rejected")
	}
	if report.Details[1].Level != model.LevelRejected {
		t.Errorf("record 1 level = %v, want REJECTED", report.Details[1].Level)
	}
	// The merged verdict carries the cross-validation analysis
	if report.Details[0].Independence == nil || !report.Details[0].Independence.IsIndependent {
		t.Errorf("record 0 missing independence analysis: %+v", report.Details[0].Independence)
	}
}

func TestPipeline_RunPolicyBatch(t *testing.T) {
	p := NewPipeline(nil)

	records := []model.Record{
		{
			"title":      "北京市文化产业促进条例",
			"name":       "文化产业促进条例",
			"category":   "industrial policy",
			"region":     "北京市",
			"doc_number": "京政发〔2023〕12号",
			"source_url": "https://www.beijing.gov.cn/zhengce/202301.html",
		},
		{
			"title":    "某扶持政策",
			"name":     "扶持政策",
			"category": "industrial policy",
			"region":   "北京市",
		},
	}

	report, err := p.Run(context.Background(), records, EntityPolicy)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if report.Passed != 1 || report.Failed != 1 {
		t.Errorf("counts = %d/%d, want 1 passed 1 failed", report.Passed, report.Failed)
	}
}

func TestPipeline_GenericSkipsCrossValidation(t *testing.T) {
	p := NewPipeline(nil)

	// No sources at all: content-level verification only, so the
	// missing source information is a warning, not a brand rejection
	record := model.Record{
		"name":   "Pop Mart",
		"region": "Beijing",
	}
	report, err := p.Run(context.Background(), []model.Record{record}, EntityGeneric)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Passed != 1 {
		t.Errorf("expected generic record to pass, got %+v", report.Details[0])
	}
	if report.Details[0].Level != model.LevelConditional {
		t.Errorf("level = %v, want CONDITIONAL", report.Details[0].Level)
	}
}

func TestDetectEntityType(t *testing.T) {
	tests := []struct {
		record   model.Record
		expected EntityType
		desc     string
	}{
		{
			record:   model.Record{"title": "条例", "category": "industrial policy"},
			expected: EntityPolicy,
			desc:     "policy category",
		},
		{
			record:   model.Record{"title": "条例", "category": "产业政策"},
			expected: EntityPolicy,
			desc:     "Chinese policy category",
		},
		{
			record:   model.Record{"title": "条例", "doc_number": "12号"},
			expected: EntityPolicy,
			desc:     "doc number implies policy",
		},
		{
			record:   model.Record{"name": "Pop Mart", "sources": []any{}},
			expected: EntityBrand,
			desc:     "source list implies brand",
		},
		{
			record:   model.Record{"name": "Pop Mart"},
			expected: EntityGeneric,
			desc:     "bare record is generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := DetectEntityType(tt.record); got != tt.expected {
				t.Errorf("DetectEntityType = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseEntityType(t *testing.T) {
	for _, s := range []string{"brand", "policy", "generic", "auto", "", "Brand"} {
		if _, err := ParseEntityType(s); err != nil {
			t.Errorf("ParseEntityType(%q) = %v", s, err)
		}
	}
	if _, err := ParseEntityType("product"); err == nil {
		t.Error("expected error for unknown entity type")
	}
}
