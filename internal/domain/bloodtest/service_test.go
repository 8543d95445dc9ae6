package bloodtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/healthvault/healthvault/internal/domain/catalog"
)

// -- Mock Repository --

type mockRepo struct {
	results map[uuid.UUID]*BloodTestResult
}

func newMockRepo() *mockRepo {
	return &mockRepo{results: make(map[uuid.UUID]*BloodTestResult)}
}

func (m *mockRepo) Create(_ context.Context, bt *BloodTestResult) error {
	bt.ID = uuid.New()
	bt.VersionID = 1
	bt.CreatedAt = time.Now()
	bt.UpdatedAt = time.Now()
	m.results[bt.ID] = bt
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*BloodTestResult, error) {
	bt, ok := m.results[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return bt, nil
}

func (m *mockRepo) GetByDocument(_ context.Context, documentID uuid.UUID) (*BloodTestResult, error) {
	for _, bt := range m.results {
		if bt.DocumentID != nil && *bt.DocumentID == documentID {
			return bt, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Update(_ context.Context, bt *BloodTestResult) error {
	if _, ok := m.results[bt.ID]; !ok {
		return fmt.Errorf("not found")
	}
	bt.VersionID++
	bt.UpdatedAt = time.Now()
	m.results[bt.ID] = bt
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.results, id)
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*BloodTestResult, int, error) {
	var result []*BloodTestResult
	for _, bt := range m.results {
		if bt.PatientID == patientID {
			result = append(result, bt)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, _ map[string]string, limit, offset int) ([]*BloodTestResult, int, error) {
	var result []*BloodTestResult
	for _, bt := range m.results {
		result = append(result, bt)
	}
	return result, len(result), nil
}

func validBloodTest() *BloodTestResult {
	return &BloodTestResult{
		PatientID: uuid.New(),
		TestDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Results: []BloodTestItem{
			{Name: "Glucose", Value: "95"},
		},
	}
}

func TestCreateBloodTest(t *testing.T) {
	svc := NewService(newMockRepo(), catalog.Default())

	bt := validBloodTest()
	if err := svc.Create(context.Background(), bt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bt.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if bt.Metadata == nil {
		t.Error("expected metadata map to be initialized")
	}
	if bt.Results[0].ID == uuid.Nil {
		t.Error("expected item ID to be assigned")
	}
}

func TestCreateBloodTestRequiresPatient(t *testing.T) {
	svc := NewService(newMockRepo(), catalog.Default())

	bt := validBloodTest()
	bt.PatientID = uuid.Nil
	if err := svc.Create(context.Background(), bt); err == nil {
		t.Error("expected error for missing patient_id")
	}
}

func TestCreateBloodTestRequiresTestDate(t *testing.T) {
	svc := NewService(newMockRepo(), catalog.Default())

	bt := validBloodTest()
	bt.TestDate = time.Time{}
	if err := svc.Create(context.Background(), bt); err == nil {
		t.Error("expected error for missing test_date")
	}
}

func TestCreateBloodTestRequiresItemFields(t *testing.T) {
	svc := NewService(newMockRepo(), catalog.Default())

	bt := validBloodTest()
	bt.Results = append(bt.Results, BloodTestItem{Value: "1.2"})
	if err := svc.Create(context.Background(), bt); err == nil {
		t.Error("expected error for item without name")
	}

	bt = validBloodTest()
	bt.Results[0].Value = ""
	if err := svc.Create(context.Background(), bt); err == nil {
		t.Error("expected error for item without value")
	}
}

func TestCreateBloodTestRejectsDuplicateParameters(t *testing.T) {
	svc := NewService(newMockRepo(), catalog.Default())

	bt := validBloodTest()
	bt.Results = append(bt.Results, BloodTestItem{Name: "Glucose (fasting)", Value: "100"})
	if err := svc.Create(context.Background(), bt); err == nil {
		t.Error("expected error for two items resolving to the same parameter")
	}

	// Unresolvable names must not trip the check.
	bt = validBloodTest()
	bt.Results = append(bt.Results,
		BloodTestItem{Name: "Exotic Assay XQ-7", Value: "1"},
		BloodTestItem{Name: "Exotic Assay XQ-8", Value: "2"},
	)
	if err := svc.Create(context.Background(), bt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateBloodTestRequiresID(t *testing.T) {
	svc := NewService(newMockRepo(), catalog.Default())

	bt := validBloodTest()
	if err := svc.Update(context.Background(), bt); err == nil {
		t.Error("expected error for update without id")
	}
}

func TestGetByDocument(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, catalog.Default())

	docID := uuid.New()
	bt := validBloodTest()
	bt.DocumentID = &docID
	if err := svc.Create(context.Background(), bt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByDocument(context.Background(), docID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != bt.ID {
		t.Errorf("expected %s, got %s", bt.ID, got.ID)
	}
}

func TestPendingReviewMarker(t *testing.T) {
	bt := validBloodTest()
	if bt.PendingReview() {
		t.Error("expected new record not to be pending review")
	}
	bt.Metadata = map[string]string{MetaPendingReview: "true"}
	if !bt.PendingReview() {
		t.Error("expected record to be pending review")
	}
}
