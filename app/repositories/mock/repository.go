package mock

import (
	"context"
	"sync"
	"time"

	"techtrends/app/models"
	"techtrends/app/repositories"
)

// PostRepository is an in-memory repositories.PostRepository. Setting Err
// makes every call fail with it.
type PostRepository struct {
	posts  []*models.Post
	nextID int
	mutex  sync.RWMutex

	Err error
}

var _ repositories.PostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{nextID: 1}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = nil
	m.nextID = 1
}

func (m *PostRepository) Create(_ context.Context, post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.Err != nil {
		return m.Err
	}

	post.ID = m.nextID
	post.CreatedAt = time.Now().UTC()
	m.nextID++
	stored := *post
	m.posts = append(m.posts, &stored)
	return nil
}

func (m *PostRepository) GetByID(_ context.Context, id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, p := range m.posts {
		if p.ID == id {
			post := *p
			return &post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *PostRepository) List(_ context.Context) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	posts := make([]*models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		post := *p
		posts = append(posts, &post)
	}
	return posts, nil
}

func (m *PostRepository) Count(_ context.Context) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.posts), nil
}

func (m *PostRepository) Close() error {
	return nil
}
