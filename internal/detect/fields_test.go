package detect

import (
	"testing"

	"github.com/pvershinin/trustgate/internal/model"
)

func TestCheckRequiredFields(t *testing.T) {
	tests := []struct {
		record model.Record
		errors int
		desc   string
	}{
		{
			record: model.Record{
				"name":     "Pop Mart",
				"region":   "Beijing",
				"category": "trendy toy blind box",
			},
			errors: 0,
			desc:   "complete brand case",
		},
		{
			record: model.Record{
				"name":     "Pop Mart",
				"category": "trendy toy blind box",
			},
			errors: 1,
			desc:   "missing region",
		},
		{
			record: model.Record{
				"category": "trendy toy blind box",
			},
			errors: 2,
			desc:   "missing name and region",
		},
		{
			record: model.Record{
				"name":     "",
				"region":   "",
				"category": "",
			},
			errors: 3,
			desc:   "empty values count as missing",
		},
		{
			record: model.Record{
				"name": "Pop Mart",
			},
			errors: 0,
			desc:   "no category field, no brand requirements",
		},
		{
			record: model.Record{
				"title":    "文化产业扶持办法",
				"category": "产业政策",
				"region":   "北京市",
				"name":     "扶持办法",
			},
			errors: 1,
			desc:   "policy without doc number or source URL",
		},
		{
			record: model.Record{
				"title":      "文化产业扶持办法",
				"category":   "industrial policy",
				"region":     "Beijing",
				"name":       "扶持办法",
				"doc_number": "京政发〔2023〕12号",
			},
			errors: 0,
			desc:   "policy with doc number",
		},
		{
			record: model.Record{
				"title":      "文化产业扶持办法",
				"category":   "policy",
				"region":     "Beijing",
				"name":       "扶持办法",
				"source_url": "https://www.beijing.gov.cn/x",
			},
			errors: 0,
			desc:   "policy with source URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			findings := CheckRequiredFields(tt.record)
			if len(findings.Errors) != tt.errors {
				t.Errorf("errors = %v, want %d", findings.Errors, tt.errors)
			}
			if len(findings.Warnings) != 0 {
				t.Errorf("field completeness never warns, got %v", findings.Warnings)
			}
		})
	}
}
