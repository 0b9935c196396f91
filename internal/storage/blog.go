package storage

import (
	"time"

	"github.com/dmapsite/internal/db"
)

// BlogPostInput carries the client-supplied blog post fields.
type BlogPostInput struct {
	Slug     string        `json:"slug" binding:"required"`
	Title    string        `json:"title" binding:"required"`
	Date     time.Time     `json:"date" binding:"required"`
	Excerpt  string        `json:"excerpt" binding:"required"`
	Content  string        `json:"content" binding:"required"`
	ImageURL string        `json:"imageUrl"`
	Author   string        `json:"author" binding:"required"`
	Tags     db.StringList `json:"tags"`
}

// BlogPostPatch is a partial blog post update.
type BlogPostPatch struct {
	Slug     *string        `json:"slug" binding:"omitempty,min=1"`
	Title    *string        `json:"title" binding:"omitempty,min=1"`
	Date     *time.Time     `json:"date"`
	Excerpt  *string        `json:"excerpt" binding:"omitempty,min=1"`
	Content  *string        `json:"content" binding:"omitempty,min=1"`
	ImageURL *string        `json:"imageUrl"`
	Author   *string        `json:"author" binding:"omitempty,min=1"`
	Tags     *db.StringList `json:"tags"`
}

func (p BlogPostPatch) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Slug != nil {
		updates["slug"] = *p.Slug
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Date != nil {
		updates["date"] = *p.Date
	}
	if p.Excerpt != nil {
		updates["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		updates["content"] = *p.Content
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}
	if p.Author != nil {
		updates["author"] = *p.Author
	}
	if p.Tags != nil {
		updates["tags"] = *p.Tags
	}
	return updates
}

// GetAllBlogPosts returns every post, newest publication date first.
func (s *Storage) GetAllBlogPosts() ([]db.BlogPost, error) {
	var rows []db.BlogPost
	if err := s.db.Order("date desc").Find(&rows).Error; err != nil {
		return nil, translate("list blog posts", err)
	}
	return rows, nil
}

// GetBlogPost returns one post by id, or ErrNotFound.
func (s *Storage) GetBlogPost(id uint) (*db.BlogPost, error) {
	var row db.BlogPost
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, translate("get blog post", err)
	}
	return &row, nil
}

// GetBlogPostBySlug returns one post by slug, or ErrNotFound.
func (s *Storage) GetBlogPostBySlug(slug string) (*db.BlogPost, error) {
	var row db.BlogPost
	if err := s.db.Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, translate("get blog post by slug", err)
	}
	return &row, nil
}

// CreateBlogPost inserts a post. A duplicate slug yields ErrDuplicate.
func (s *Storage) CreateBlogPost(in BlogPostInput) (*db.BlogPost, error) {
	row := db.BlogPost{
		Slug:     in.Slug,
		Title:    in.Title,
		Date:     in.Date,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Author:   in.Author,
		Tags:     in.Tags,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, translate("create blog post", err)
	}
	return &row, nil
}

// UpdateBlogPost applies a partial update and returns the updated row, or
// ErrNotFound when the id does not exist. Changing the slug to one already
// taken yields ErrDuplicate.
func (s *Storage) UpdateBlogPost(id uint, patch BlogPostPatch) (*db.BlogPost, error) {
	row, err := s.GetBlogPost(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyPatch("update blog post", row, patch.changes()); err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteBlogPost removes a post. Idempotent.
func (s *Storage) DeleteBlogPost(id uint) error {
	return s.deleteByID("delete blog post", &db.BlogPost{}, id)
}
