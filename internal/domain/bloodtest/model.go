package bloodtest

import (
	"time"

	"github.com/google/uuid"
)

// Metadata keys written by the review workflow.
const (
	MetaPendingReview   = "pending_review"
	MetaReviewCompleted = "review_completed"
	MetaReviewedGroups  = "reviewed_groups_count"
	MetaImportItems     = "import_items_count"
)

// BloodTestItem is one measured value within a blood-test record, one entry
// per distinct standardized test for that draw.
type BloodTestItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Value          string    `db:"value" json:"value"`
	Unit           *string   `db:"unit" json:"unit,omitempty"`
	ReferenceRange *string   `db:"reference_range" json:"reference_range,omitempty"`
	IsAbnormal     bool      `db:"is_abnormal" json:"is_abnormal"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
}

// BloodTestResult maps to the blood_test table. Results are kept in
// extraction order; Metadata carries free-form annotations such as the
// review completion markers.
type BloodTestResult struct {
	ID         uuid.UUID         `db:"id" json:"id"`
	PatientID  uuid.UUID         `db:"patient_id" json:"patient_id"`
	DocumentID *uuid.UUID        `db:"document_id" json:"document_id,omitempty"`
	TestDate   time.Time         `db:"test_date" json:"test_date"`
	Laboratory *string           `db:"laboratory" json:"laboratory,omitempty"`
	Results    []BloodTestItem   `json:"results"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	VersionID  int               `db:"version_id" json:"version_id"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at"`
}

// PendingReview reports whether the record awaits candidate review.
func (bt *BloodTestResult) PendingReview() bool {
	_, ok := bt.Metadata[MetaPendingReview]
	return ok
}
