package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rocgym/job-board/internal/model"
)

// ErrDuplicateApplication is returned when an account has already applied
// to the same job. The handler performs an existence check first for error
// precedence, and the unique (job_id, applicant_id) index closes the
// remaining check-then-insert race.
var ErrDuplicateApplication = errors.New("application already exists")

// ApplicationRepo encapsulates all queries against the `applications`
// table. Applications are insert-only: the service never updates or
// deletes them.
type ApplicationRepo struct {
	db *sql.DB
}

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

const applicationColumns = `id, job_id, applicant_id, full_name, email, resume_url,
	cover_letter, additional_info, status, applied_at`

func scanApplication(row interface{ Scan(...any) error }) (*model.Application, error) {
	var a model.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.FullName, &a.Email,
		&a.ResumeURL, &a.CoverLetter, &a.AdditionalInfo, &a.Status, &a.AppliedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application with status "pending". On success the
// ID, Status and AppliedAt fields are populated from the stored row.
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO applications (job_id, applicant_id, full_name, email,
		 resume_url, cover_letter, additional_info, status) VALUES (?,?,?,?,?,?,?,?)`,
		a.JobID, a.ApplicantID, a.FullName, a.Email,
		a.ResumeURL, a.CoverLetter, a.AdditionalInfo, model.StatusPending)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateApplication
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE id = ?", id)
	stored, err := scanApplication(row)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

// Exists reports whether the account has already applied to the job.
func (r *ApplicationRepo) Exists(ctx context.Context, jobID, applicantID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM applications WHERE job_id = ? AND applicant_id = ? LIMIT 1",
		jobID, applicantID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByJob returns all applications submitted against one job.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uint64) ([]*model.Application, error) {
	return r.list(ctx, "SELECT "+applicationColumns+" FROM applications WHERE job_id = ? ORDER BY id", jobID)
}

// ListByApplicant returns all applications one account has submitted.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uint64) ([]*model.Application, error) {
	return r.list(ctx, "SELECT "+applicationColumns+" FROM applications WHERE applicant_id = ? ORDER BY id", applicantID)
}

// ListAll returns every application. Admin visibility only.
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]*model.Application, error) {
	return r.list(ctx, "SELECT "+applicationColumns+" FROM applications ORDER BY id")
}

// ListByJobIDs returns applications whose job is in the given id set. An
// empty set yields an empty result without touching the database; it is
// the normal case for a recruiter with no postings.
func (r *ApplicationRepo) ListByJobIDs(ctx context.Context, jobIDs []uint64) ([]*model.Application, error) {
	if len(jobIDs) == 0 {
		return []*model.Application{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(jobIDs)), ",")
	args := make([]any, len(jobIDs))
	for i, id := range jobIDs {
		args[i] = id
	}
	return r.list(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE job_id IN ("+placeholders+") ORDER BY id",
		args...)
}

func (r *ApplicationRepo) list(ctx context.Context, q string, args ...any) ([]*model.Application, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
