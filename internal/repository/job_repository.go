package repository

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/rocgym/job-board/internal/model"
)

// ErrJobNotFound is returned when a job id does not exist. It is distinct
// from a malformed id, which handlers reject before reaching this layer.
var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows job listings. Title and Location match as
// case-insensitive substrings; WorkType matches exactly. Zero values mean
// "no filter".
type JobFilter struct {
	Title    string
	Location string
	WorkType string
}

// JobRepo encapsulates all database queries related to job postings.
type JobRepo struct {
	db *sql.DB
}

func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{db: db} }

const jobColumns = `id, company_name, title, description, location, work_type,
	salary_range, requirements, views, posted_by, date_posted, updated_by, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*model.Job, error) {
	var (
		j         model.Job
		updatedBy sql.NullInt64
		updatedAt sql.NullTime
	)
	err := row.Scan(&j.ID, &j.CompanyName, &j.Title, &j.Description, &j.Location,
		&j.WorkType, &j.SalaryRange, &j.Requirements, &j.Views, &j.PostedBy,
		&j.DatePosted, &updatedBy, &updatedAt)
	if err != nil {
		return nil, err
	}
	if updatedBy.Valid {
		v := uint64(updatedBy.Int64)
		j.UpdatedBy = &v
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		j.UpdatedAt = &t
	}
	return &j, nil
}

// Create inserts a new job posting. On success the job's ID, DatePosted and
// Views fields are populated from the stored row.
func (r *JobRepo) Create(ctx context.Context, j *model.Job) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (company_name, title, description, location, work_type,
		 salary_range, requirements, views, posted_by) VALUES (?,?,?,?,?,?,?,0,?)`,
		j.CompanyName, j.Title, j.Description, j.Location, j.WorkType,
		j.SalaryRange, j.Requirements, j.PostedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*j = *stored
	return nil
}

// GetByID fetches a job without touching the view counter. Used for
// ownership checks ahead of update/delete and for application lookups.
func (r *JobRepo) GetByID(ctx context.Context, id uint64) (*model.Job, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	return j, err
}

// IncrementViewsAndGet atomically bumps the view counter and returns the
// post-increment row. The UPDATE and SELECT run in one transaction so
// concurrent detail fetches never lose an increment.
func (r *JobRepo) IncrementViewsAndGet(ctx context.Context, id uint64) (*model.Job, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "UPDATE jobs SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrJobNotFound
	}
	j, err := scanJob(tx.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return j, nil
}

// List returns all jobs matching the filter ordered by id. Substring
// filters rely on the columns' case-insensitive collation.
func (r *JobRepo) List(ctx context.Context, f JobFilter) ([]*model.Job, error) {
	q := "SELECT " + jobColumns + " FROM jobs"
	var (
		conds []string
		args  []any
	)
	if f.Title != "" {
		conds = append(conds, "title LIKE ?")
		args = append(args, "%"+f.Title+"%")
	}
	if f.Location != "" {
		conds = append(conds, "location LIKE ?")
		args = append(args, "%"+f.Location+"%")
	}
	if f.WorkType != "" {
		conds = append(conds, "work_type = ?")
		args = append(args, f.WorkType)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// Update applies a partial field set to a job. The changes map keys are
// column names already validated by the caller; posted_by is never among
// them. Keys are applied in sorted order so the generated SQL is stable.
func (r *JobRepo) Update(ctx context.Context, id uint64, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		sets []string
		args []any
	)
	for _, k := range keys {
		sets = append(sets, k+" = ?")
		args = append(args, changes[k])
	}
	args = append(args, id)

	// RowsAffected is not inspected here: MySQL reports 0 when the new
	// values equal the old ones, and callers have already verified the row
	// exists before computing the change set.
	_, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

// Delete removes a job posting by id.
func (r *JobRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrJobNotFound
	}
	return nil
}

// IDsByOwner returns the ids of all jobs posted by the given account. It
// backs the recruiter visibility scoping on application listings.
func (r *JobRepo) IDsByOwner(ctx context.Context, ownerID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM jobs WHERE posted_by = ? ORDER BY id", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
