package handler

import (
	"bytes"
	"net/http"

	"github.com/dmapsite/internal/db"
	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// blogPostView is a blog post plus its rendered body. Rendering is
// presentation policy and never persisted.
type blogPostView struct {
	db.BlogPost
	HTML string `json:"html"`
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

// GetBlogPosts lists posts, newest publication date first.
func (a *API) GetBlogPosts(c *gin.Context) {
	rows, err := a.store.GetAllBlogPosts()
	if err != nil {
		respondStorageError(c, "Blog post", err)
		return
	}
	respondData(c, rows)
}

// GetBlogPostBySlug returns one post along with its sanitized HTML body.
func (a *API) GetBlogPostBySlug(c *gin.Context) {
	row, err := a.store.GetBlogPostBySlug(c.Param("slug"))
	if err != nil {
		respondStorageError(c, "Blog post", err)
		return
	}
	respondData(c, blogPostView{BlogPost: *row, HTML: renderMarkdown(row.Content)})
}

// CreateBlogPost adds a post.
func (a *API) CreateBlogPost(c *gin.Context) {
	var in storage.BlogPostInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateBlogPost(in)
	if err != nil {
		respondStorageError(c, "Blog post", err)
		return
	}
	respondData(c, row)
}

// UpdateBlogPost applies a partial update to a post.
func (a *API) UpdateBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog post id")
		return
	}
	var patch storage.BlogPostPatch
	if !bindJSON(c, &patch) {
		return
	}
	row, err := a.store.UpdateBlogPost(id, patch)
	if err != nil {
		respondStorageError(c, "Blog post", err)
		return
	}
	respondData(c, row)
}

// DeleteBlogPost removes a post.
func (a *API) DeleteBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid blog post id")
		return
	}
	if err := a.store.DeleteBlogPost(id); err != nil {
		respondStorageError(c, "Blog post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
