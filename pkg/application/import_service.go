package application

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/felixgeelhaar/paceline/pkg/domain"
	"github.com/felixgeelhaar/paceline/pkg/domain/schedule"
)

// ImportService ingests metric samples and activity networks from JSON
// documents produced by external tools. Documents are validated against a
// schema before anything is written.
type ImportService struct {
	repo      domain.WorkspaceRepository
	audit     domain.AuditLogger
	snapshots *SnapshotService
}

func NewImportService(repo domain.WorkspaceRepository, audit domain.AuditLogger, snapshots *SnapshotService) *ImportService {
	return &ImportService{repo: repo, audit: audit, snapshots: snapshots}
}

const sampleSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["date", "pv", "ev", "ac"],
    "properties": {
      "date": { "type": "string", "format": "date" },
      "pv": { "type": "number", "minimum": 0 },
      "ev": { "type": "number", "minimum": 0 },
      "ac": { "type": "number", "minimum": 0 }
    }
  }
}`

const activitySchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "duration"],
    "properties": {
      "id": { "type": "string" },
      "name": { "type": "string" },
      "duration": { "type": "integer", "minimum": 0 },
      "depends_on": { "type": "array", "items": { "type": "string" } }
    }
  }
}`

var (
	sampleSchemaLoader   = gojsonschema.NewStringLoader(sampleSchemaJSON)
	activitySchemaLoader = gojsonschema.NewStringLoader(activitySchemaJSON)
)

// ImportResult summarizes what an import changed.
type ImportResult struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type sampleDocument struct {
	Date string  `json:"date"`
	PV   float64 `json:"pv"`
	EV   float64 `json:"ev"`
	AC   float64 `json:"ac"`
}

// ImportSamples validates and records a batch of metric samples. Rows
// that fail domain validation are skipped and reported; valid rows are
// recorded even when others fail.
func (s *ImportService) ImportSamples(data []byte) (*ImportResult, error) {
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}
	if err := validateAgainstSchema(sampleSchemaLoader, data); err != nil {
		return nil, err
	}

	var docs []sampleDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse samples: %w", err)
	}

	result := &ImportResult{Errors: make(map[string]string)}
	for _, doc := range docs {
		date, err := time.Parse("2006-01-02", doc.Date)
		if err != nil {
			result.Errors[doc.Date] = fmt.Sprintf("invalid date: %v", err)
			result.Skipped++
			continue
		}
		if _, err := s.snapshots.AddSample(date, doc.PV, doc.EV, doc.AC); err != nil {
			result.Errors[doc.Date] = err.Error()
			result.Skipped++
			continue
		}
		result.Imported++
	}

	return result, s.audit.Log("samples.import", domain.ActorSystem, map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
}

type activityDocument struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Duration  int      `json:"duration"`
	DependsOn []string `json:"depends_on"`
}

// ImportActivities validates and replaces the activity network. The
// imported network must schedule cleanly; a cycle or dangling dependency
// rejects the whole document so a half-imported network never lands.
func (s *ImportService) ImportActivities(data []byte) (*ImportResult, error) {
	if !s.repo.IsInitialized() {
		return nil, ErrNotInitialized
	}
	if err := validateAgainstSchema(activitySchemaLoader, data); err != nil {
		return nil, err
	}

	var docs []activityDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse activities: %w", err)
	}

	activities := make([]schedule.Activity, 0, len(docs))
	for _, doc := range docs {
		activity, err := schedule.NewActivity(doc.ID, doc.Name, doc.Duration, doc.DependsOn)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", doc.ID, err)
		}
		activities = append(activities, *activity)
	}

	// Dry-run the scheduler to surface cycles and unknown dependencies
	// before anything is persisted.
	if _, err := schedule.ComputeSchedule(activities); err != nil {
		return nil, err
	}

	if err := s.repo.SaveActivities(activities); err != nil {
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}

	result := &ImportResult{Imported: len(activities)}
	return result, s.audit.Log("activities.import", domain.ActorSystem, map[string]interface{}{
		"imported": result.Imported,
	})
}

func validateAgainstSchema(schema gojsonschema.JSONLoader, data []byte) error {
	documentLoader := gojsonschema.NewStringLoader(string(data))
	result, err := gojsonschema.Validate(schema, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return fmt.Errorf("document does not match schema: %v", messages)
	}
	return nil
}
