package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pvershinin/trustgate/internal/model"
)

// LoadRecords reads a list of records from a JSON or YAML file. The
// format is chosen by extension (.yaml/.yml vs anything else). This is
// the only file input path; the library API takes records directly.
func LoadRecords(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	var records []model.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse YAML records: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse JSON records: %w", err)
		}
	}

	// Drop empty entries so trailing nulls or blank documents don't
	// show up as rejectable records
	out := records[:0]
	for _, record := range records {
		if len(record) > 0 {
			out = append(out, record)
		}
	}

	return out, nil
}
