package repositories

import (
	"context"

	"techtrends/app/models"
)

// PostRepository defines the interface for post data access.
// Every call runs as one unit of work on its own scoped connection.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Backuper writes a consistent copy of the store to a new file.
type Backuper interface {
	Backup(ctx context.Context, path string) error
}

var (
	_ PostRepository = (*SQLitePostRepository)(nil)
	_ PostRepository = (*BadgerPostRepository)(nil)
	_ Backuper       = (*SQLitePostRepository)(nil)
	_ Backuper       = (*BadgerPostRepository)(nil)
)
