package review

import (
	"time"

	"github.com/google/uuid"
)

// Candidate validation statuses.
const (
	ValidationValid       = "valid"
	ValidationInvalidType = "invalid_type"
	ValidationOutOfRange  = "out_of_range"
	ValidationMissingData = "missing_data"
)

// Session statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Candidate is one extracted observation for a lab test, possibly one of
// several conflicting readings for the same test.
type Candidate struct {
	ID               uuid.UUID `json:"id" db:"id"`
	OriginalTestName string    `json:"original_test_name" db:"original_test_name"`
	Value            string    `json:"value" db:"value"`
	Unit             *string   `json:"unit,omitempty" db:"unit"`
	ReferenceRange   *string   `json:"reference_range,omitempty" db:"reference_range"`
	IsAbnormal       bool      `json:"is_abnormal" db:"is_abnormal"`
	Confidence       float64   `json:"confidence" db:"confidence"`
	ValidationStatus string    `json:"validation_status" db:"validation_status"`
}

// CandidateGroup is the set of candidates that resolve to one standardized
// lab parameter.
type CandidateGroup struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	StandardKey      string      `json:"standard_key" db:"standard_key"`
	StandardTestName string      `json:"standard_test_name" db:"standard_test_name"`
	Candidates       []Candidate `json:"candidates" db:"candidates"`
	RecommendedID    *uuid.UUID  `json:"recommended_candidate_id,omitempty" db:"recommended_candidate_id"`
}

// Candidate returns the group's candidate with the given id, or nil.
func (g *CandidateGroup) Candidate(id uuid.UUID) *Candidate {
	for i := range g.Candidates {
		if g.Candidates[i].ID == id {
			return &g.Candidates[i]
		}
	}
	return nil
}

// Recommended returns the default candidate for the group: the upstream
// recommendation when it is still present and valid, otherwise the first
// valid candidate in extraction order. Returns nil when no candidate can
// be recommended.
func (g *CandidateGroup) Recommended() *Candidate {
	if g.RecommendedID != nil {
		if c := g.Candidate(*g.RecommendedID); c != nil && c.ValidationStatus == ValidationValid {
			return c
		}
	}
	for i := range g.Candidates {
		if g.Candidates[i].ValidationStatus == ValidationValid {
			return &g.Candidates[i]
		}
	}
	return nil
}

// Session holds the candidate groups awaiting review for one document.
// At most one pending session exists per document at a time.
type Session struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	DocumentID  uuid.UUID        `json:"document_id" db:"document_id"`
	BloodTestID uuid.UUID        `json:"blood_test_id" db:"blood_test_id"`
	Status      string           `json:"status" db:"status"`
	FullImport  bool             `json:"full_import" db:"full_import"`
	Groups      []CandidateGroup `json:"groups" db:"groups"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
}
