package profile

import (
	"context"
	"database/sql"
	"fmt"

	"learnapp/pkg/category"
	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

type Repo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Categories(ctx context.Context, userId int64) ([]*category.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name FROM categories c
		JOIN profile_categories pc ON pc.category_id = c.id
		WHERE pc.user_id = $1 ORDER BY c.name`, userId)
	if err != nil {
		return nil, fmt.Errorf("profile/repo: failed finding categories: %w", err)
	}
	defer rows.Close()

	categories := []*category.Category{}
	for rows.Next() {
		c := new(category.Category)
		if err := rows.Scan(&c.Id, &c.Name); err != nil {
			return nil, fmt.Errorf("profile/repo: could not scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile/repo: rows iteration failed: %w", err)
	}
	return categories, nil
}

// Update replaces the subscriptions when categories is not nil and applies
// the saved posts patch. Removing a saved post also takes it out of every
// collection of the user. Everything runs in one transaction.
func (r *Repo) Update(ctx context.Context, userId int64, categories []int64, saved *common.SetPatch) error {
	err := store.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if categories != nil {
			if err := replaceCategories(ctx, tx, userId, categories); err != nil {
				return err
			}
		}
		if saved == nil || len(saved.Ids) == 0 {
			return nil
		}
		if saved.Op == common.SetAdd {
			return savePosts(ctx, tx, userId, saved.Ids)
		}
		return unsavePosts(ctx, tx, userId, saved.Ids)
	})
	if err != nil {
		return fmt.Errorf("profile/repo: failed updating profile of user %d: %w", userId, err)
	}
	return nil
}

func replaceCategories(ctx context.Context, tx *sql.Tx, userId int64, ids []int64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM profile_categories WHERE user_id = $1", userId); err != nil {
		return err
	}
	for _, id := range ids {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO profile_categories(user_id, category_id) VALUES($1, $2)", userId, id)
		if err != nil {
			return err
		}
	}
	return nil
}

func savePosts(ctx context.Context, tx *sql.Tx, userId int64, ids []int64) error {
	for _, id := range ids {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO saved_posts(user_id, post_id) VALUES($1, $2) ON CONFLICT DO NOTHING", userId, id)
		if err != nil {
			return err
		}
	}
	return nil
}

func unsavePosts(ctx context.Context, tx *sql.Tx, userId int64, ids []int64) error {
	args := store.Args{}
	q := "DELETE FROM saved_posts WHERE user_id = " + args.Add(userId) + " AND post_id IN (" + args.In(ids) + ")"
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return err
	}

	args = store.Args{}
	q = "DELETE FROM collection_posts WHERE post_id IN (" + args.In(ids) + ")" +
		" AND collection_id IN (SELECT id FROM collections WHERE author_id = " + args.Add(userId) + ")"
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}
