package models

import "time"

// StatusPassed is the status string the AI service assigns to a passing
// inspection. Anything else counts as failed.
const StatusPassed = "PASSED"

// Inspection is one AI-evaluated comparison between an uploaded photo and a
// product's reference image. Records are created only by the upload endpoint
// and are read-only history from the client's perspective.
type Inspection struct {
	ID             int      `json:"id"`
	InspectionCode string   `json:"inspection_code"`
	ProductCode    string   `json:"product_code"`
	UploadedImage  ImageRef `json:"uploaded_image"`
	SampleImage    ImageRef `json:"sample_image"`
	AIConclusion   string   `json:"ai_conclusion"`
	Status         string   `json:"status"`
	InspectorEmail string   `json:"inspector_email"`
	CreatedAt      string   `json:"created_at"`
}

// Passed normalizes the backend's status string into a pass/fail predicate.
func (i Inspection) Passed() bool { return i.Status == StatusPassed }

// createdAtLayouts covers the timestamp shapes the backend has been seen to
// emit (RFC3339 with and without fractional seconds or zone).
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses CreatedAt. The zero time is returned for unparseable
// values, which sorts them to the end of any newest-first ordering.
func (i Inspection) CreatedTime() time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, i.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// InspectionPage is the paginated /inspections response payload.
type InspectionPage struct {
	Inspections []Inspection `json:"inspections"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
	PerPage     int          `json:"per_page"`
	TotalPages  int          `json:"total_pages"`
}
