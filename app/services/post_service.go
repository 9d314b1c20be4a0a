package services

import (
	"context"
	"errors"
	"fmt"

	"techtrends/app/models"
	"techtrends/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and stores a new post. A missing title yields
// models.ErrTitleRequired and nothing is written.
func (s *PostService) CreatePost(ctx context.Context, post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// GetPost looks up a single post. found is false, with a nil error, when no
// post has that ID.
func (s *PostService) GetPost(ctx context.Context, id int) (post *models.Post, found bool, err error) {
	post, err = s.postRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get post: %w", err)
	}
	return post, true, nil
}

// ListPosts returns every post in the order they were created.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CountPosts returns how many posts are stored.
func (s *PostService) CountPosts(ctx context.Context) (int, error) {
	n, err := s.postRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
