package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnapp/pkg/common"
	"learnapp/pkg/store"
)

type RefRepo struct {
	db *sql.DB
}

func NewRefRepo(db *sql.DB) *RefRepo {
	return &RefRepo{db: db}
}

func (r *RefRepo) Add(ctx context.Context, f *FileRef) (int64, error) {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO file_refs(author_id, name, url) VALUES($1, $2, $3) RETURNING id",
		f.AuthorId, f.Name, f.URL).Scan(&f.Id)
	if store.IsUniqueViolation(err) {
		return 0, common.Conflict("file %s is already registered", f.URL)
	}
	if err != nil {
		return 0, fmt.Errorf("files/repo: failed inserting file ref: %w", err)
	}
	return f.Id, nil
}

func (r *RefRepo) GetByURL(ctx context.Context, url string) (*FileRef, error) {
	f := new(FileRef)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, author_id, name, url FROM file_refs WHERE url = $1", url).
		Scan(&f.Id, &f.AuthorId, &f.Name, &f.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NotFound("file not found")
	}
	if err != nil {
		return nil, fmt.Errorf("files/repo: failed finding file ref: %w", err)
	}
	return f, nil
}

func (r *RefRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM file_refs WHERE id = $1", id); err != nil {
		return fmt.Errorf("files/repo: failed deleting file ref %d: %w", id, err)
	}
	return nil
}
