package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"techtrends/app/metrics"
	"techtrends/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB. Each
// transaction counts as one scoped connection.
type BadgerPostRepository struct {
	db    *badger.DB
	conns *metrics.Counter
}

// OpenBadgerPostRepository opens the Badger directory at dir. An empty dir
// keeps everything in memory.
func OpenBadgerPostRepository(dir string, conns *metrics.Counter) (*BadgerPostRepository, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return NewBadgerPostRepository(db, conns), nil
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB, conns *metrics.Counter) *BadgerPostRepository {
	if conns == nil {
		conns = metrics.NewCounter()
	}
	return &BadgerPostRepository{db: db, conns: conns}
}

func (r *BadgerPostRepository) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	countConnection(r.conns)
	return r.db.View(fn)
}

// update runs fn in a read-write transaction, retrying it while it conflicts
// with a concurrent commit. A conflict means another writer made progress, so
// the loop ends once ctx is done or fn commits.
func (r *BadgerPostRepository) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	countConnection(r.conns)
	for {
		err := r.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.update(ctx, func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.CreatedAt = time.Now().UTC().Truncate(time.Second)

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post

	err := r.view(ctx, func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves every post in insertion order.
func (r *BadgerPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.view(ctx, func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %w", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of stored posts.
func (r *BadgerPostRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.view(ctx, func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Backup streams a full Badger backup into a new file at path.
func (r *BadgerPostRepository) Backup(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	countConnection(r.conns)
	if _, err := r.db.Backup(f, 0); err != nil {
		return fmt.Errorf("backup to %s: %w", path, err)
	}
	return f.Sync()
}

// Restore loads a backup written by Backup into the store.
func (r *BadgerPostRepository) Restore(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	countConnection(r.conns)
	if err := r.db.Load(f, 16); err != nil {
		return fmt.Errorf("restore from %s: %w", path, err)
	}
	return nil
}

// Close closes the underlying Badger DB.
func (r *BadgerPostRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
