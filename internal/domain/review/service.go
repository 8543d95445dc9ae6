package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthvault/healthvault/internal/domain/bloodtest"
	"github.com/healthvault/healthvault/internal/domain/catalog"
)

// RecordStore is the slice of the blood-test service the review workflow
// needs: loading the record under review and persisting the reconciled one.
type RecordStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*bloodtest.BloodTestResult, error)
	Update(ctx context.Context, bt *bloodtest.BloodTestResult) error
}

type Service struct {
	sessions SessionRepository
	records  RecordStore
	cat      *catalog.Catalog
}

func NewService(sessions SessionRepository, records RecordStore, cat *catalog.Catalog) *Service {
	return &Service{sessions: sessions, records: records, cat: cat}
}

func validateSession(s *Session) error {
	if s.DocumentID == uuid.Nil {
		return fmt.Errorf("document_id is required")
	}
	if s.BloodTestID == uuid.Nil {
		return fmt.Errorf("blood_test_id is required")
	}
	if len(s.Groups) == 0 {
		return fmt.Errorf("at least one candidate group is required")
	}
	for i := range s.Groups {
		g := &s.Groups[i]
		if g.StandardKey == "" {
			return fmt.Errorf("groups[%d]: standard_key is required", i)
		}
		if len(g.Candidates) == 0 {
			return fmt.Errorf("groups[%d]: at least one candidate is required", i)
		}
		if g.ID == uuid.Nil {
			g.ID = uuid.New()
		}
		for j := range g.Candidates {
			c := &g.Candidates[j]
			if c.OriginalTestName == "" {
				return fmt.Errorf("groups[%d].candidates[%d]: original_test_name is required", i, j)
			}
			if c.ID == uuid.Nil {
				c.ID = uuid.New()
			}
			switch c.ValidationStatus {
			case ValidationValid, ValidationInvalidType, ValidationOutOfRange, ValidationMissingData:
			case "":
				c.ValidationStatus = ValidationValid
			default:
				return fmt.Errorf("groups[%d].candidates[%d]: invalid validation_status %q", i, j, c.ValidationStatus)
			}
		}
	}
	return nil
}

// CreateSession opens a review session for a document and marks the
// underlying blood-test record as pending review. A document holds at most
// one pending session at a time.
func (s *Service) CreateSession(ctx context.Context, sess *Session) error {
	if err := validateSession(sess); err != nil {
		return err
	}
	if existing, err := s.sessions.GetByDocument(ctx, sess.DocumentID); err == nil && existing != nil {
		return fmt.Errorf("document %s already has a pending review session", sess.DocumentID)
	}

	bt, err := s.records.GetByID(ctx, sess.BloodTestID)
	if err != nil {
		return fmt.Errorf("load blood test: %w", err)
	}
	if bt.Metadata == nil {
		bt.Metadata = map[string]string{}
	}
	bt.Metadata[bloodtest.MetaPendingReview] = "true"
	if err := s.records.Update(ctx, bt); err != nil {
		return fmt.Errorf("mark pending review: %w", err)
	}

	sess.Status = StatusPending
	return s.sessions.Create(ctx, sess)
}

func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	return s.sessions.ListPending(ctx, limit, offset)
}

// Complete applies the user's final selections to the session's blood-test
// record. Groups absent from selections are ignored intentionally and do
// not keep the session open. The record is persisted before the session is
// marked completed; on a persistence failure the session stays pending so
// the review can be retried without losing the user's work.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, selections map[uuid.UUID]uuid.UUID) (*bloodtest.BloodTestResult, int, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, 0, fmt.Errorf("load session: %w", err)
	}
	if sess.Status != StatusPending {
		return nil, 0, fmt.Errorf("session is %s, not pending", sess.Status)
	}

	bt, err := s.records.GetByID(ctx, sess.BloodTestID)
	if err != nil {
		return nil, 0, fmt.Errorf("load blood test: %w", err)
	}

	updated, applied := Reconcile(bt.Results, sess.Groups, selections, s.cat)
	bt.Results = updated
	ApplyMetadata(bt, applied, sess.FullImport)

	if err := s.records.Update(ctx, bt); err != nil {
		return nil, 0, fmt.Errorf("save blood test: %w", err)
	}

	now := time.Now()
	sess.Status = StatusCompleted
	sess.CompletedAt = &now
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, 0, fmt.Errorf("close session: %w", err)
	}
	return bt, applied, nil
}

// AcceptAllRecommended selects each group's recommended candidate and
// reconciles. Groups without any valid candidate are left unresolved: their
// ids are returned, the session stays pending holding only those groups,
// and the pending-review marker stays on the record until a later Complete
// resolves or dismisses them.
func (s *Service) AcceptAllRecommended(ctx context.Context, id uuid.UUID) (*bloodtest.BloodTestResult, int, []uuid.UUID, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("load session: %w", err)
	}
	if sess.Status != StatusPending {
		return nil, 0, nil, fmt.Errorf("session is %s, not pending", sess.Status)
	}

	selections := make(map[uuid.UUID]uuid.UUID)
	var unresolved []uuid.UUID
	for i := range sess.Groups {
		g := &sess.Groups[i]
		if c := g.Recommended(); c != nil {
			selections[g.ID] = c.ID
		} else {
			unresolved = append(unresolved, g.ID)
		}
	}

	bt, err := s.records.GetByID(ctx, sess.BloodTestID)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("load blood test: %w", err)
	}

	updated, applied := Reconcile(bt.Results, sess.Groups, selections, s.cat)
	bt.Results = updated

	if len(unresolved) == 0 {
		ApplyMetadata(bt, applied, sess.FullImport)
		if err := s.records.Update(ctx, bt); err != nil {
			return nil, 0, nil, fmt.Errorf("save blood test: %w", err)
		}
		now := time.Now()
		sess.Status = StatusCompleted
		sess.CompletedAt = &now
		if err := s.sessions.Update(ctx, sess); err != nil {
			return nil, 0, nil, fmt.Errorf("close session: %w", err)
		}
		return bt, applied, nil, nil
	}

	if err := s.records.Update(ctx, bt); err != nil {
		return nil, 0, nil, fmt.Errorf("save blood test: %w", err)
	}

	// Keep only the unresolved groups so the remaining review is exactly
	// what still needs the user's attention.
	remaining := sess.Groups[:0]
	for _, g := range sess.Groups {
		if _, ok := selections[g.ID]; !ok {
			remaining = append(remaining, g)
		}
	}
	sess.Groups = remaining
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, 0, nil, fmt.Errorf("update session: %w", err)
	}
	return bt, applied, unresolved, nil
}

// Cancel abandons a pending session without touching the record's results.
// The pending-review marker is cleared so the record is no longer held open.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if sess.Status != StatusPending {
		return fmt.Errorf("session is %s, not pending", sess.Status)
	}

	bt, err := s.records.GetByID(ctx, sess.BloodTestID)
	if err == nil && bt.PendingReview() {
		delete(bt.Metadata, bloodtest.MetaPendingReview)
		if err := s.records.Update(ctx, bt); err != nil {
			return fmt.Errorf("clear pending review: %w", err)
		}
	}

	sess.Status = StatusCancelled
	return s.sessions.Update(ctx, sess)
}
