package bloodtest

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, bt *BloodTestResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*BloodTestResult, error)
	GetByDocument(ctx context.Context, documentID uuid.UUID) (*BloodTestResult, error)
	Update(ctx context.Context, bt *BloodTestResult) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*BloodTestResult, int, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*BloodTestResult, int, error)
}
