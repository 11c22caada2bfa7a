package repository

import (
	"context"
	"database/sql"

	"github.com/rocgym/job-board/internal/model"
)

// MemberRepo reads gym membership records. The `members` table is owned by
// a separate system; this service only lists it for admins.
type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{db: db} }

// ListAll returns every member record ordered by id.
func (r *MemberRepo) ListAll(ctx context.Context) ([]*model.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, full_name, email, membership_type, joined_at FROM members ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Member{}
	for rows.Next() {
		m := new(model.Member)
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.MembershipType, &m.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
