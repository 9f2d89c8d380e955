package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

// Repo stores votes of a single target kind.
type Repo struct {
	db     *sql.DB
	target Target
}

func NewVoteRepo(db *sql.DB, t Target) *Repo {
	return &Repo{db: db, target: t}
}

func (r *Repo) TargetExists(ctx context.Context, id int64) (bool, error) {
	var n int
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = $1", r.target.Parent)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return false, fmt.Errorf("voting/repo: failed finding %s %d: %w", r.target.Name, id, err)
	}
	return n > 0, nil
}

func (r *Repo) Add(ctx context.Context, v *Vote) (int64, error) {
	q := fmt.Sprintf("INSERT INTO %s(voter_id, %s, value) VALUES($1, $2, $3) RETURNING id", r.target.Table, r.target.Column)
	err := r.db.QueryRowContext(ctx, q, v.VoterId, v.TargetId, int(v.Score)).Scan(&v.Id)
	switch {
	case store.IsUniqueViolation(err):
		return 0, common.Conflict("you have already voted for this %s", r.target.Name)
	case store.IsForeignKeyViolation(err):
		return 0, common.NotFound("%s not found", r.target.Name)
	case err != nil:
		return 0, fmt.Errorf("voting/repo: failed inserting vote: %w", err)
	}
	return v.Id, nil
}

// GetByVoter returns the voter's vote on the target.
func (r *Repo) GetByVoter(ctx context.Context, voterId, targetId int64) (*Vote, error) {
	v := &Vote{}
	q := fmt.Sprintf("SELECT id, voter_id, %s, value FROM %s WHERE voter_id = $1 AND %s = $2",
		r.target.Column, r.target.Table, r.target.Column)
	err := r.db.QueryRowContext(ctx, q, voterId, targetId).Scan(&v.Id, &v.VoterId, &v.TargetId, &v.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFound("vote not found")
	}
	if err != nil {
		return nil, fmt.Errorf("voting/repo: failed finding vote: %w", err)
	}
	return v, nil
}

func (r *Repo) Update(ctx context.Context, v *Vote) error {
	q := fmt.Sprintf("UPDATE %s SET value = $1 WHERE id = $2", r.target.Table)
	if _, err := r.db.ExecContext(ctx, q, int(v.Score), v.Id); err != nil {
		return fmt.Errorf("voting/repo: failed updating vote %d: %w", v.Id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.target.Table)
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("voting/repo: failed deleting vote %d: %w", id, err)
	}
	return nil
}
