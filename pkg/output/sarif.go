package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sambabib/depwatch/pkg/audit"
)

// SARIF format specification: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

// SarifReport represents the top-level SARIF report structure
type SarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

// SarifRun represents a single run of the audit tool
type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Results     []SarifResult     `json:"results"`
	Invocations []SarifInvocation `json:"invocations"`
}

// SarifTool represents the tool that performed the audit
type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

// SarifDriver represents the driver of the tool
type SarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SarifRule `json:"rules"`
}

// SarifRule represents a rule that was evaluated during the audit
type SarifRule struct {
	ID               string       `json:"id"`
	ShortDescription SarifMessage `json:"shortDescription"`
	FullDescription  SarifMessage `json:"fullDescription"`
	Help             SarifMessage `json:"help"`
}

// SarifResult represents a result of the audit
type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations"`
}

// SarifMessage represents a message in the SARIF report
type SarifMessage struct {
	Text string `json:"text"`
}

// SarifLocation represents a location in the project
type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

// SarifPhysicalLocation represents a physical location in the project
type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
}

// SarifArtifactLocation represents the location of an artifact
type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifInvocation represents an invocation of the tool
type SarifInvocation struct {
	ExecutionSuccessful bool   `json:"executionSuccessful"`
	StartTimeUtc        string `json:"startTimeUtc"`
	EndTimeUtc          string `json:"endTimeUtc"`
}

// GenerateSarifReport converts audit records to SARIF format. Only stale
// packages become results; fresh ones have nothing to flag
func GenerateSarifReport(records []audit.Record, projectPath, toolVersion string) ([]byte, error) {
	// Define rules
	rules := []SarifRule{
		{
			ID:               "stale-version",
			ShortDescription: SarifMessage{Text: "Watched package has not moved past the requested version"},
			FullDescription:  SarifMessage{Text: "The installed version of this watched package is at or below the version named on the watch-list."},
			Help:             SarifMessage{Text: "Update the package past the watched version, or drop it from the watch-list."},
		},
	}

	// Convert stale records to SARIF results
	results := make([]SarifResult, 0, len(records))
	for _, record := range records {
		if !record.Stale {
			continue
		}

		messageText := fmt.Sprintf("%s: installed version %s has not moved past %s",
			record.Name, record.Installed, record.Requested)

		result := SarifResult{
			RuleID:  "stale-version",
			Level:   "warning",
			Message: SarifMessage{Text: messageText},
			Locations: []SarifLocation{
				{
					PhysicalLocation: SarifPhysicalLocation{
						ArtifactLocation: SarifArtifactLocation{
							URI: projectPath,
						},
					},
				},
			},
		}

		results = append(results, result)
	}

	// Create SARIF report
	now := time.Now().UTC()
	sarifReport := SarifReport{
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Version: "2.1.0",
		Runs: []SarifRun{
			{
				Tool: SarifTool{
					Driver: SarifDriver{
						Name:           "depwatch",
						Version:        toolVersion,
						InformationURI: "https://github.com/sambabib/depwatch",
						Rules:          rules,
					},
				},
				Results: results,
				Invocations: []SarifInvocation{
					{
						ExecutionSuccessful: true,
						StartTimeUtc:        now.Add(-time.Second).Format(time.RFC3339),
						EndTimeUtc:          now.Format(time.RFC3339),
					},
				},
			},
		},
	}

	// Marshal to JSON
	return json.MarshalIndent(sarifReport, "", "  ")
}
