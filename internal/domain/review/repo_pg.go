package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sessionRepoPG struct{ pool *pgxpool.Pool }

func NewSessionRepoPG(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepoPG{pool: pool}
}

const sessionCols = `id, document_id, blood_test_id, status, full_import, groups, created_at, updated_at, completed_at`

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	var groups []byte
	err := row.Scan(&s.ID, &s.DocumentID, &s.BloodTestID, &s.Status, &s.FullImport,
		&groups, &s.CreatedAt, &s.UpdatedAt, &s.CompletedAt)
	if err != nil {
		return nil, err
	}
	if len(groups) > 0 {
		if err := json.Unmarshal(groups, &s.Groups); err != nil {
			return nil, fmt.Errorf("decode groups: %w", err)
		}
	}
	return &s, nil
}

func (r *sessionRepoPG) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.New()
	groups, err := json.Marshal(s.Groups)
	if err != nil {
		return fmt.Errorf("encode groups: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO review_session (id, document_id, blood_test_id, status, full_import, groups)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		s.ID, s.DocumentID, s.BloodTestID, s.Status, s.FullImport, groups)
	return err
}

func (r *sessionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	return scanSession(r.pool.QueryRow(ctx, `SELECT `+sessionCols+` FROM review_session WHERE id = $1`, id))
}

func (r *sessionRepoPG) GetByDocument(ctx context.Context, documentID uuid.UUID) (*Session, error) {
	return scanSession(r.pool.QueryRow(ctx, `
		SELECT `+sessionCols+` FROM review_session
		WHERE document_id = $1 AND status = 'pending'`, documentID))
}

func (r *sessionRepoPG) Update(ctx context.Context, s *Session) error {
	groups, err := json.Marshal(s.Groups)
	if err != nil {
		return fmt.Errorf("encode groups: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE review_session SET status=$2, full_import=$3, groups=$4,
			completed_at=$5, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.Status, s.FullImport, groups, s.CompletedAt)
	return err
}

func (r *sessionRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM review_session WHERE id = $1`, id)
	return err
}

func (r *sessionRepoPG) ListPending(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM review_session WHERE status = 'pending'`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+sessionCols+` FROM review_session
		WHERE status = 'pending' ORDER BY created_at LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}
	return sessions, total, rows.Err()
}
