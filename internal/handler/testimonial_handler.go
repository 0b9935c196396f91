package handler

import (
	"net/http"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetTestimonials lists all testimonials.
func (a *API) GetTestimonials(c *gin.Context) {
	rows, err := a.store.GetAllTestimonials()
	if err != nil {
		respondStorageError(c, "Testimonial", err)
		return
	}
	respondData(c, rows)
}

// CreateTestimonial adds a testimonial.
func (a *API) CreateTestimonial(c *gin.Context) {
	var in storage.TestimonialInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateTestimonial(in)
	if err != nil {
		respondStorageError(c, "Testimonial", err)
		return
	}
	respondData(c, row)
}

// UpdateTestimonial applies a partial update to a testimonial.
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}
	var patch storage.TestimonialPatch
	if !bindJSON(c, &patch) {
		return
	}
	row, err := a.store.UpdateTestimonial(id, patch)
	if err != nil {
		respondStorageError(c, "Testimonial", err)
		return
	}
	respondData(c, row)
}

// DeleteTestimonial removes a testimonial.
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid testimonial id")
		return
	}
	if err := a.store.DeleteTestimonial(id); err != nil {
		respondStorageError(c, "Testimonial", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
