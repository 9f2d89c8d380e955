package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

const selectComments = `SELECT c.id, c.author_id, u.username, c.post_id, c.body, c.created,
	COALESCE((SELECT SUM(v.value) FROM comment_votes v WHERE v.comment_id = c.id), 0) AS score
FROM comments c
JOIN users u ON u.id = c.author_id`

type Repo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) PostExists(ctx context.Context, postId int64) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE id = $1", postId).Scan(&n); err != nil {
		return false, fmt.Errorf("comment/repo: failed finding post %d: %w", postId, err)
	}
	return n > 0, nil
}

func (r *Repo) Add(ctx context.Context, c *Comment) (int64, error) {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO comments(author_id, post_id, body, created) VALUES($1, $2, $3, $4) RETURNING id",
		c.AuthorId, c.PostId, c.Body, c.Created).Scan(&c.Id)
	switch {
	case store.IsUniqueViolation(err):
		return 0, common.Conflict("you have already commented this post")
	case store.IsForeignKeyViolation(err):
		return 0, common.NotFound("post not found")
	case err != nil:
		return 0, fmt.Errorf("comment/repo: failed inserting comment: %w", err)
	}
	return c.Id, nil
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx, selectComments+" WHERE c.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFound("comment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("comment/repo: failed finding comment %d: %w", id, err)
	}
	return c, nil
}

// ListByPost returns the post's comments, best scored first.
func (r *Repo) ListByPost(ctx context.Context, postId int64) ([]*Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		selectComments+" WHERE c.post_id = $1 ORDER BY score DESC, c.id ASC", postId)
	if err != nil {
		return nil, fmt.Errorf("comment/repo: failed finding comments: %w", err)
	}
	defer rows.Close()

	comments := []*Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("comment/repo: could not scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comment/repo: rows iteration failed: %w", err)
	}
	return comments, nil
}

func (r *Repo) UpdateBody(ctx context.Context, id int64, body string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE comments SET body = $1 WHERE id = $2", body, id); err != nil {
		return fmt.Errorf("comment/repo: failed updating comment %d: %w", id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id); err != nil {
		return fmt.Errorf("comment/repo: failed deleting comment %d: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row scanner) (*Comment, error) {
	c := new(Comment)
	err := row.Scan(&c.Id, &c.AuthorId, &c.Username, &c.PostId, &c.Body, &c.Created, &c.Score)
	if err != nil {
		return nil, err
	}
	return c, nil
}
