package service

import (
	"context"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type blogService struct {
	blogRepo repository.BlogPostRepository
	now      func() time.Time
}

func NewBlogService(blogRepo repository.BlogPostRepository) BlogService {
	return &blogService{blogRepo: blogRepo, now: time.Now}
}

func (s *blogService) ListPublished(ctx context.Context, locale string, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.blogRepo.ListPublished(ctx, locale, page, pageSize)
}

// GetPublished hides drafts from the public site.
func (s *blogService) GetPublished(ctx context.Context, locale, slug string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, locale, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (s *blogService) ListPosts(ctx context.Context, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.blogRepo.List(ctx, page, pageSize)
}

func (s *blogService) GetPost(ctx context.Context, id int32) (*domain.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *blogService) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	if err := s.prepare(post); err != nil {
		return err
	}
	return s.blogRepo.Create(ctx, post)
}

func (s *blogService) UpdatePost(ctx context.Context, post *domain.BlogPost) error {
	if err := s.prepare(post); err != nil {
		return err
	}
	return s.blogRepo.Update(ctx, post)
}

func (s *blogService) DeletePost(ctx context.Context, id int32) error {
	return s.blogRepo.Delete(ctx, id)
}

// prepare validates a post and stamps PublishedOn the first time it goes live.
func (s *blogService) prepare(post *domain.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return &pricing.ValidationError{Field: "title", Reason: "is required"}
	}
	if post.Locale == "" {
		return &pricing.ValidationError{Field: "locale", Reason: "is required"}
	}
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	if post.Published && post.PublishedOn == nil {
		now := s.now().UTC()
		post.PublishedOn = &now
	}
	return nil
}

func normalizePage(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
