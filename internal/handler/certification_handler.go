package handler

import (
	"net/http"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetCertifications lists all certifications.
func (a *API) GetCertifications(c *gin.Context) {
	rows, err := a.store.GetAllCertifications()
	if err != nil {
		respondStorageError(c, "Certification", err)
		return
	}
	respondData(c, rows)
}

// CreateCertification adds a certification.
func (a *API) CreateCertification(c *gin.Context) {
	var in storage.CertificationInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateCertification(in)
	if err != nil {
		respondStorageError(c, "Certification", err)
		return
	}
	respondData(c, row)
}

// DeleteCertification removes a certification.
func (a *API) DeleteCertification(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid certification id")
		return
	}
	if err := a.store.DeleteCertification(id); err != nil {
		respondStorageError(c, "Certification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
