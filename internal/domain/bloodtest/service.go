package bloodtest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthvault/healthvault/internal/domain/catalog"
)

type Service struct {
	repo Repository
	cat  *catalog.Catalog
}

func NewService(repo Repository, cat *catalog.Catalog) *Service {
	return &Service{repo: repo, cat: cat}
}

// checkDuplicateKeys rejects a result set where two items resolve to the
// same standardized parameter. Unresolvable names are allowed through.
func (s *Service) checkDuplicateKeys(items []BloodTestItem) error {
	seen := make(map[string]string, len(items))
	for _, item := range items {
		param, ok := s.cat.Resolve(item.Name)
		if !ok {
			continue
		}
		if prev, dup := seen[param.Key]; dup {
			return fmt.Errorf("items %q and %q both resolve to standard parameter %s", prev, item.Name, param.Key)
		}
		seen[param.Key] = item.Name
	}
	return nil
}

func validateResult(bt *BloodTestResult) error {
	if bt.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if bt.TestDate.IsZero() {
		return fmt.Errorf("test_date is required")
	}
	for i, item := range bt.Results {
		if item.Name == "" {
			return fmt.Errorf("results[%d]: name is required", i)
		}
		if item.Value == "" {
			return fmt.Errorf("results[%d]: value is required", i)
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, bt *BloodTestResult) error {
	if err := validateResult(bt); err != nil {
		return err
	}
	if err := s.checkDuplicateKeys(bt.Results); err != nil {
		return err
	}
	if bt.Metadata == nil {
		bt.Metadata = map[string]string{}
	}
	for i := range bt.Results {
		if bt.Results[i].ID == uuid.Nil {
			bt.Results[i].ID = uuid.New()
		}
	}
	return s.repo.Create(ctx, bt)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*BloodTestResult, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByDocument(ctx context.Context, documentID uuid.UUID) (*BloodTestResult, error) {
	return s.repo.GetByDocument(ctx, documentID)
}

func (s *Service) Update(ctx context.Context, bt *BloodTestResult) error {
	if bt.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	if err := validateResult(bt); err != nil {
		return err
	}
	for i := range bt.Results {
		if bt.Results[i].ID == uuid.Nil {
			bt.Results[i].ID = uuid.New()
		}
	}
	return s.repo.Update(ctx, bt)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*BloodTestResult, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*BloodTestResult, int, error) {
	return s.repo.Search(ctx, params, limit, offset)
}
