package handler

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const thumbnailWidth = 480

// UploadImage stores an uploaded image under a unique name and writes a
// scaled thumbnail next to it for listing pages.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image in request")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	dst := filepath.Join(a.uploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	thumbnailURL := ""
	if thumbName, err := a.writeThumbnail(dst, name); err == nil {
		thumbnailURL = path.Join(a.uploadURL, thumbName)
	} else {
		// A broken thumbnail never fails the upload.
		c.Error(err)
	}

	respondData(c, gin.H{
		"url":          path.Join(a.uploadURL, name),
		"thumbnailUrl": thumbnailURL,
	})
}

// writeThumbnail scales the stored image down to thumbnailWidth and saves
// it as PNG. Images already narrow enough reuse the original file.
func (a *API) writeThumbnail(srcPath, name string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode upload: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= thumbnailWidth {
		return name, nil
	}

	height := bounds.Dy() * thumbnailWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, thumbnailWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	thumbName := "thumb_" + strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
	out, err := os.Create(filepath.Join(a.uploadDir, thumbName))
	if err != nil {
		return "", fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, dst); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return thumbName, nil
}
