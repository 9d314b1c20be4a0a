package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"techtrends/app/metrics"
	"techtrends/app/models"

	_ "modernc.org/sqlite"
)

const postsSchema = `
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    title TEXT NOT NULL,
    content TEXT NOT NULL
);
`

// createdLayouts are the encodings the created column may come back in.
var createdLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
}

// SQLitePostRepository implements PostRepository on a single SQLite file.
type SQLitePostRepository struct {
	db    *sql.DB
	conns *metrics.Counter
}

// NewSQLitePostRepository opens the SQLite file at path and makes sure the
// posts table exists. maxIdle bounds how many released connections are kept
// for reuse; zero means every operation opens a fresh connection.
func NewSQLitePostRepository(path string, maxIdle int, conns *metrics.Counter) (*SQLitePostRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if conns == nil {
		conns = metrics.NewCounter()
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxIdleConns(maxIdle)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := EnsureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLitePostRepository{db: db, conns: conns}, nil
}

// EnsureSchema creates the posts table when it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, postsSchema); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

// withConn acquires a connection, runs fn on it and releases it on every
// exit path.
func (r *SQLitePostRepository) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	countConnection(r.conns)
	return fn(conn)
}

// Create inserts a new post and fills in its ID and creation time.
func (r *SQLitePostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		var created string
		err := conn.QueryRowContext(ctx,
			`INSERT INTO posts (title, content) VALUES (?, ?) RETURNING id, created`,
			post.Title, post.Content,
		).Scan(&post.ID, &created)
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}
		post.CreatedAt = parseCreated(created)
		return nil
	})
}

// GetByID retrieves a post by ID
func (r *SQLitePostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var post *models.Post
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			`SELECT id, created, title, content FROM posts WHERE id = ?`, id)
		p, err := scanPost(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get post %d: %w", id, err)
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// List retrieves every post in insertion order.
func (r *SQLitePostRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT id, created, title, content FROM posts ORDER BY id`)
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanPost(rows)
			if err != nil {
				return fmt.Errorf("scan post: %w", err)
			}
			posts = append(posts, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of stored posts.
func (r *SQLitePostRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		return nil
	})
	return n, err
}

// Backup writes a copy of the database to path, which must not exist yet.
func (r *SQLitePostRepository) Backup(ctx context.Context, path string) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, `VACUUM INTO ?`, path); err != nil {
			return fmt.Errorf("backup to %s: %w", path, err)
		}
		return nil
	})
}

// Close closes the SQLite handle.
func (r *SQLitePostRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var (
		post    models.Post
		created string
	)
	if err := row.Scan(&post.ID, &created, &post.Title, &post.Content); err != nil {
		return nil, err
	}
	post.CreatedAt = parseCreated(created)
	return &post, nil
}

func parseCreated(value string) time.Time {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
