package services

import (
	"context"

	"github.com/inkwell-blog/inkwell/types"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	List(ctx context.Context) ([]types.Post, error)
	Get(ctx context.Context, id int) (types.Post, error)
	Create(ctx context.Context, post types.Post) (types.Post, error)
	Update(ctx context.Context, post types.Post) (types.Post, error)
	Delete(ctx context.Context, id int) error
}

// PostService encapsulates post use-cases. Mutations are scoped to the
// post's author.
type PostService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) List(ctx context.Context) ([]types.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int) (types.Post, error) {
	return s.repo.Get(ctx, id)
}

func (s *PostService) Create(ctx context.Context, authorID int, title, body string) (types.Post, error) {
	if title == "" {
		return types.Post{}, &ValidationError{Message: "Title is required."}
	}
	return s.repo.Create(ctx, types.Post{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	})
}

// Update replaces the title and body of the post. The caller must be the
// post's author; anyone else gets ErrForbidden and the row is untouched.
func (s *PostService) Update(ctx context.Context, userID, postID int, title, body string) (types.Post, error) {
	post, err := s.repo.Get(ctx, postID)
	if err != nil {
		return types.Post{}, err
	}
	if post.AuthorID != userID {
		return types.Post{}, ErrForbidden
	}
	if title == "" {
		return types.Post{}, &ValidationError{Message: "Title is required."}
	}

	post.Title = title
	post.Body = body
	return s.repo.Update(ctx, post)
}

func (s *PostService) Delete(ctx context.Context, userID, postID int) error {
	post, err := s.repo.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, postID)
}
