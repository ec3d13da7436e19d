package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const blogColumns = `id, slug, locale, title, summary, body, cover_image_url, published, published_on, created_on, updated_on`

type blogPostRepository struct {
	db *sql.DB
}

func NewBlogPostRepository(db *sql.DB) repository.BlogPostRepository {
	return &blogPostRepository{db: db}
}

func scanBlogPost(s scanner) (*domain.BlogPost, error) {
	p := &domain.BlogPost{}
	var publishedOn sql.NullTime
	if err := s.Scan(&p.ID, &p.Slug, &p.Locale, &p.Title, &p.Summary, &p.Body, &p.CoverImageURL, &p.Published, &publishedOn, &p.CreatedOn, &p.UpdatedOn); err != nil {
		return nil, err
	}
	if publishedOn.Valid {
		p.PublishedOn = &publishedOn.Time
	}
	return p, nil
}

func (r *blogPostRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	now := time.Now()
	query := `INSERT INTO blog_posts (slug, locale, title, summary, body, cover_image_url, published, published_on, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, p.Slug, p.Locale, p.Title, p.Summary, p.Body, p.CoverImageURL, p.Published, p.PublishedOn, now, now).Scan(&p.ID); err != nil {
		return err
	}
	p.CreatedOn, p.UpdatedOn = now, now
	return nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id int32) (*domain.BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, locale, slug string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE locale = $1 AND slug = $2 AND published = TRUE`
	p, err := scanBlogPost(r.db.QueryRowContext(ctx, query, locale, slug))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *blogPostRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	query := `UPDATE blog_posts SET slug=$1, locale=$2, title=$3, summary=$4, body=$5, cover_image_url=$6, published=$7, published_on=$8, updated_on=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, p.Slug, p.Locale, p.Title, p.Summary, p.Body, p.CoverImageURL, p.Published, p.PublishedOn, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *blogPostRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *blogPostRepository) ListPublished(ctx context.Context, locale string, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	return r.page(ctx, ` WHERE published = TRUE AND locale = $1`, []interface{}{locale}, "published_on DESC", page, pageSize)
}

func (r *blogPostRepository) List(ctx context.Context, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	return r.page(ctx, "", nil, "created_on DESC", page, pageSize)
}

func (r *blogPostRepository) page(ctx context.Context, where string, args []interface{}, order string, page, pageSize int32) ([]domain.BlogPost, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM blog_posts`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := `SELECT ` + blogColumns + ` FROM blog_posts` + where + ` ORDER BY ` + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, pageSize, pageOffset(page, pageSize))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *p)
	}
	return posts, count, rows.Err()
}
