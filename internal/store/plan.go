package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/certplan/internal/studyplan"
)

// planRepo implements PlanRepo. Plans are stored whole as JSON; the
// columns beside it exist for ordering and listing.
type planRepo struct {
	db *sql.DB
}

func (r *planRepo) Save(ctx context.Context, plan *studyplan.StudyPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO plans (id, name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		plan.ID, plan.Name, string(data), plan.CreatedAt.UnixNano(), plan.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, id string) (*studyplan.StudyPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM plans WHERE id = ?`, id)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrPlanNotFound, id)
	}
	return plan, err
}

func (r *planRepo) Latest(ctx context.Context) (*studyplan.StudyPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT data FROM plans ORDER BY updated_at DESC, rowid DESC LIMIT 1`)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return plan, err
}

func (r *planRepo) List(ctx context.Context) ([]PlanSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM plans ORDER BY updated_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var summaries []PlanSummary
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, PlanSummary{
			ID:               plan.ID,
			Name:             plan.Name,
			CertificationIDs: plan.CertificationIDs,
			TotalWeeks:       plan.TotalWeeks,
			Percentage:       plan.Progress.Percentage,
			CreatedAt:        plan.CreatedAt,
			UpdatedAt:        plan.UpdatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return summaries, nil
}

func (r *planRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPlanNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*studyplan.StudyPlan, error) {
	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}
	var plan studyplan.StudyPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}
