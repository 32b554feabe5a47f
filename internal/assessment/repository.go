package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	Save(ctx context.Context, r *Record) error
	List(ctx context.Context, f ListFilter) ([]Record, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "patient_id", "source", "overall_urgency", "escalated",
	"red_flags", "request", "assessment", "created_at", "updated_at",
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query, args, err := psql.Select(columns...).From("assessments").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *postgresRepo) Save(ctx context.Context, rec *Record) error {
	query, args, err := upsertQuery(rec)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]Record, error) {
	query, args, err := listQuery(f)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

func upsertQuery(rec *Record) (string, []any, error) {
	requestJSON, err := json.Marshal(rec.Request)
	if err != nil {
		return "", nil, fmt.Errorf("encode request: %w", err)
	}
	assessmentJSON, err := json.Marshal(rec.Assessment)
	if err != nil {
		return "", nil, fmt.Errorf("encode assessment: %w", err)
	}

	query, args, err := psql.Insert("assessments").
		Columns(columns...).
		Values(rec.ID, rec.PatientID, rec.Source, string(rec.Urgency()), rec.Escalated,
			pq.StringArray(rec.RedFlagIDs()), requestJSON, assessmentJSON, rec.CreatedAt, rec.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			source = EXCLUDED.source,
			overall_urgency = EXCLUDED.overall_urgency,
			escalated = EXCLUDED.escalated,
			red_flags = EXCLUDED.red_flags,
			assessment = EXCLUDED.assessment,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build upsert: %w", err)
	}
	return query, args, nil
}

func listQuery(f ListFilter) (string, []any, error) {
	q := psql.Select(columns...).From("assessments").OrderBy("created_at DESC")
	if f.Urgency != "" {
		q = q.Where(sq.Eq{"overall_urgency": string(f.Urgency)})
	}
	if f.PatientID != nil {
		q = q.Where(sq.Eq{"patient_id": *f.PatientID})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build list: %w", err)
	}
	return query, args, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec            Record
		patientID      uuid.NullUUID
		urgency        string
		redFlags       pq.StringArray
		requestJSON    []byte
		assessmentJSON []byte
	)
	err := row.Scan(&rec.ID, &patientID, &rec.Source, &urgency, &rec.Escalated,
		&redFlags, &requestJSON, &assessmentJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if patientID.Valid {
		pid := patientID.UUID
		rec.PatientID = &pid
	}
	if len(requestJSON) > 0 {
		if err := json.Unmarshal(requestJSON, &rec.Request); err != nil {
			return nil, fmt.Errorf("failed to unmarshal request: %w", err)
		}
	}
	if len(assessmentJSON) > 0 {
		if err := json.Unmarshal(assessmentJSON, &rec.Assessment); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
		}
	}
	return &rec, nil
}
