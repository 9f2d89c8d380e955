package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

type Repo struct {
	db *sql.DB
}

func NewCollectionRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, c *Collection, postIds []int64) (int64, error) {
	err := store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			"INSERT INTO collections(author_id, title, description, created) VALUES($1, $2, $3, $4) RETURNING id",
			c.AuthorId, c.Title, c.Description, c.Created).Scan(&c.Id)
		if err != nil {
			return err
		}
		return addPosts(ctx, tx, c.Id, postIds)
	})
	if store.IsUniqueViolation(err) {
		return 0, common.Conflict("you already have a collection with title %q", c.Title)
	}
	if err != nil {
		return 0, fmt.Errorf("collection/repo: failed inserting collection: %w", err)
	}
	return c.Id, nil
}

func (r *Repo) GetById(ctx context.Context, id int64) (*Collection, error) {
	c := new(Collection)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, author_id, title, description, created FROM collections WHERE id = $1", id).
		Scan(&c.Id, &c.AuthorId, &c.Title, &c.Description, &c.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFound("collection not found")
	}
	if err != nil {
		return nil, fmt.Errorf("collection/repo: failed finding collection %d: %w", id, err)
	}
	return c, nil
}

// ListByAuthor returns the author's collections, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorId int64) ([]*Collection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author_id, title, description, created FROM collections
		WHERE author_id = $1 ORDER BY created DESC, id DESC`, authorId)
	if err != nil {
		return nil, fmt.Errorf("collection/repo: failed finding collections: %w", err)
	}
	defer rows.Close()

	collections := []*Collection{}
	for rows.Next() {
		c := new(Collection)
		if err := rows.Scan(&c.Id, &c.AuthorId, &c.Title, &c.Description, &c.Created); err != nil {
			return nil, fmt.Errorf("collection/repo: could not scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("collection/repo: rows iteration failed: %w", err)
	}
	return collections, nil
}

// Update stores title and description and applies the posts patch, if any,
// in one transaction.
func (r *Repo) Update(ctx context.Context, c *Collection, pt *common.SetPatch) error {
	err := store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"UPDATE collections SET title = $1, description = $2 WHERE id = $3",
			c.Title, c.Description, c.Id)
		if err != nil || pt == nil {
			return err
		}
		if pt.Op == common.SetAdd {
			return addPosts(ctx, tx, c.Id, pt.Ids)
		}
		return removePosts(ctx, tx, c.Id, pt.Ids)
	})
	if store.IsUniqueViolation(err) {
		return common.Conflict("you already have a collection with title %q", c.Title)
	}
	if err != nil {
		return fmt.Errorf("collection/repo: failed updating collection %d: %w", c.Id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM collections WHERE id = $1", id); err != nil {
		return fmt.Errorf("collection/repo: failed deleting collection %d: %w", id, err)
	}
	return nil
}

// SavedPostIds returns the ids among postIds saved by the user.
func (r *Repo) SavedPostIds(ctx context.Context, userId int64, postIds []int64) ([]int64, error) {
	if len(postIds) == 0 {
		return []int64{}, nil
	}
	args := store.Args{}
	q := "SELECT post_id FROM saved_posts WHERE user_id = " + args.Add(userId) +
		" AND post_id IN (" + args.In(postIds) + ")"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("collection/repo: failed finding saved posts: %w", err)
	}
	defer rows.Close()

	saved := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("collection/repo: could not scan post id: %w", err)
		}
		saved = append(saved, id)
	}
	return saved, rows.Err()
}

func addPosts(ctx context.Context, tx *sql.Tx, collectionId int64, postIds []int64) error {
	for _, id := range postIds {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO collection_posts(collection_id, post_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
			collectionId, id)
		if err != nil {
			return err
		}
	}
	return nil
}

func removePosts(ctx context.Context, tx *sql.Tx, collectionId int64, postIds []int64) error {
	if len(postIds) == 0 {
		return nil
	}
	args := store.Args{}
	q := "DELETE FROM collection_posts WHERE collection_id = " + args.Add(collectionId) +
		" AND post_id IN (" + args.In(postIds) + ")"
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}
