package bloodtest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const btCols = `id, patient_id, document_id, test_date, laboratory, metadata, version_id, created_at, updated_at`

func (r *repoPG) scanBloodTest(row pgx.Row) (*BloodTestResult, error) {
	var bt BloodTestResult
	var metadata []byte
	err := row.Scan(&bt.ID, &bt.PatientID, &bt.DocumentID, &bt.TestDate, &bt.Laboratory,
		&metadata, &bt.VersionID, &bt.CreatedAt, &bt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &bt.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &bt, nil
}

func (r *repoPG) loadItems(ctx context.Context, bt *BloodTestResult) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, value, unit, reference_range, is_abnormal, notes
		FROM blood_test_item WHERE blood_test_id = $1 ORDER BY position`, bt.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item BloodTestItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Value, &item.Unit,
			&item.ReferenceRange, &item.IsAbnormal, &item.Notes); err != nil {
			return err
		}
		bt.Results = append(bt.Results, item)
	}
	return rows.Err()
}

func (r *repoPG) insertItems(ctx context.Context, tx pgx.Tx, bt *BloodTestResult) error {
	for i := range bt.Results {
		item := &bt.Results[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO blood_test_item (id, blood_test_id, position, name, value, unit, reference_range, is_abnormal, notes)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			item.ID, bt.ID, i, item.Name, item.Value, item.Unit, item.ReferenceRange, item.IsAbnormal, item.Notes)
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeMetadata(m map[string]string) ([]byte, error) {
	if m == nil {
		m = map[string]string{}
	}
	return json.Marshal(m)
}

func (r *repoPG) Create(ctx context.Context, bt *BloodTestResult) error {
	bt.ID = uuid.New()
	metadata, err := encodeMetadata(bt.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO blood_test (id, patient_id, document_id, test_date, laboratory, metadata)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		bt.ID, bt.PatientID, bt.DocumentID, bt.TestDate, bt.Laboratory, metadata)
	if err != nil {
		return err
	}
	if err := r.insertItems(ctx, tx, bt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*BloodTestResult, error) {
	bt, err := r.scanBloodTest(r.pool.QueryRow(ctx, `SELECT `+btCols+` FROM blood_test WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

func (r *repoPG) GetByDocument(ctx context.Context, documentID uuid.UUID) (*BloodTestResult, error) {
	bt, err := r.scanBloodTest(r.pool.QueryRow(ctx, `SELECT `+btCols+` FROM blood_test WHERE document_id = $1`, documentID))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, bt); err != nil {
		return nil, err
	}
	return bt, nil
}

func (r *repoPG) Update(ctx context.Context, bt *BloodTestResult) error {
	metadata, err := encodeMetadata(bt.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE blood_test SET test_date=$2, laboratory=$3, metadata=$4,
			version_id=version_id+1, updated_at=NOW()
		WHERE id = $1`,
		bt.ID, bt.TestDate, bt.Laboratory, metadata)
	if err != nil {
		return err
	}

	// Items are replaced wholesale; order encodes extraction order.
	if _, err := tx.Exec(ctx, `DELETE FROM blood_test_item WHERE blood_test_id = $1`, bt.ID); err != nil {
		return err
	}
	if err := r.insertItems(ctx, tx, bt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM blood_test WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*BloodTestResult, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blood_test WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+btCols+` FROM blood_test WHERE patient_id = $1 ORDER BY test_date DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*BloodTestResult
	for rows.Next() {
		bt, err := r.scanBloodTest(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, bt := range items {
		if err := r.loadItems(ctx, bt); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *repoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*BloodTestResult, int, error) {
	query := `SELECT ` + btCols + ` FROM blood_test WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM blood_test WHERE 1=1`
	var args []interface{}
	idx := 1

	if p, ok := params["patient"]; ok {
		query += fmt.Sprintf(` AND patient_id = $%d`, idx)
		countQuery += fmt.Sprintf(` AND patient_id = $%d`, idx)
		args = append(args, p)
		idx++
	}
	if p, ok := params["document"]; ok {
		query += fmt.Sprintf(` AND document_id = $%d`, idx)
		countQuery += fmt.Sprintf(` AND document_id = $%d`, idx)
		args = append(args, p)
		idx++
	}
	if p, ok := params["laboratory"]; ok {
		query += fmt.Sprintf(` AND laboratory ILIKE $%d`, idx)
		countQuery += fmt.Sprintf(` AND laboratory ILIKE $%d`, idx)
		args = append(args, "%"+p+"%")
		idx++
	}
	if p, ok := params["from"]; ok {
		query += fmt.Sprintf(` AND test_date >= $%d`, idx)
		countQuery += fmt.Sprintf(` AND test_date >= $%d`, idx)
		args = append(args, p)
		idx++
	}
	if p, ok := params["to"]; ok {
		query += fmt.Sprintf(` AND test_date <= $%d`, idx)
		countQuery += fmt.Sprintf(` AND test_date <= $%d`, idx)
		args = append(args, p)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY test_date DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*BloodTestResult
	for rows.Next() {
		bt, err := r.scanBloodTest(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, bt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, bt := range items {
		if err := r.loadItems(ctx, bt); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}
