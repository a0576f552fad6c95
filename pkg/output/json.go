package output

import (
	"encoding/json"

	"github.com/sambabib/depwatch/pkg/audit"
)

// GenerateJSONReport converts audit records to JSON format
func GenerateJSONReport(records []audit.Record) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}
