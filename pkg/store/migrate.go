package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var DefaultCategories = []string{
	"Algorithms",
	"AI",
	"Hardware",
	"Networking",
	"Operating System",
	"Programming",
	"Software Engineering",
	"Testing",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users(
		id {{serial}},
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL UNIQUE,
		password {{bytes}} NOT NULL,
		created {{time}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories(
		id {{serial}},
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS profiles(
		user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS profile_categories(
		user_id BIGINT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		PRIMARY KEY(user_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS posts(
		id {{serial}},
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		resources TEXT NOT NULL DEFAULT '[]',
		tags TEXT NOT NULL DEFAULT '[]',
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		image TEXT NOT NULL DEFAULT '',
		created {{time}} NOT NULL,
		UNIQUE(author_id, title)
	)`,
	`CREATE TABLE IF NOT EXISTS post_tags(
		post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		tag TEXT NOT NULL,
		PRIMARY KEY(post_id, tag)
	)`,
	`CREATE TABLE IF NOT EXISTS saved_posts(
		user_id BIGINT NOT NULL REFERENCES profiles(user_id) ON DELETE CASCADE,
		post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		PRIMARY KEY(user_id, post_id)
	)`,
	`CREATE TABLE IF NOT EXISTS collections(
		id {{serial}},
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created {{time}} NOT NULL,
		UNIQUE(author_id, title)
	)`,
	`CREATE TABLE IF NOT EXISTS collection_posts(
		collection_id BIGINT NOT NULL REFERENCES collections(id) ON DELETE CASCADE,
		post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		PRIMARY KEY(collection_id, post_id)
	)`,
	`CREATE TABLE IF NOT EXISTS post_votes(
		id {{serial}},
		voter_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		value INTEGER NOT NULL CHECK(value IN (-1, 1)),
		UNIQUE(voter_id, post_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comments(
		id {{serial}},
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		body TEXT NOT NULL,
		created {{time}} NOT NULL,
		UNIQUE(author_id, post_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comment_votes(
		id {{serial}},
		voter_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		comment_id BIGINT NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
		value INTEGER NOT NULL CHECK(value IN (-1, 1)),
		UNIQUE(voter_id, comment_id)
	)`,
	`CREATE TABLE IF NOT EXISTS file_refs(
		id {{serial}},
		author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		url TEXT NOT NULL UNIQUE
	)`,
}

func dialect(driver string) *strings.Replacer {
	if driver == DriverSQLite {
		return strings.NewReplacer(
			"{{serial}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
			"{{bytes}}", "BLOB",
			"{{time}}", "DATETIME",
		)
	}
	return strings.NewReplacer(
		"{{serial}}", "BIGSERIAL PRIMARY KEY",
		"{{bytes}}", "BYTEA",
		"{{time}}", "TIMESTAMPTZ",
	)
}

// Schema returns the DDL statements for the driver.
func Schema(driver string) []string {
	r := dialect(driver)
	stmts := make([]string, 0, len(schema))
	for _, s := range schema {
		stmts = append(stmts, r.Replace(s))
	}
	return stmts
}

// Migrate creates missing tables and the default categories.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	for _, stmt := range Schema(driver) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migration failed: %w", err)
		}
	}
	for _, name := range DefaultCategories {
		_, err := db.ExecContext(ctx,
			"INSERT INTO categories(name) VALUES($1) ON CONFLICT (name) DO NOTHING", name)
		if err != nil {
			return fmt.Errorf("store: failed seeding category %q: %w", name, err)
		}
	}
	return nil
}
