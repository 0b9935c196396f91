package handler

import (
	"net/http"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetServices lists all service offerings.
func (a *API) GetServices(c *gin.Context) {
	rows, err := a.store.GetAllServices()
	if err != nil {
		respondStorageError(c, "Service", err)
		return
	}
	respondData(c, rows)
}

// GetService returns one service offering.
func (a *API) GetService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid service id")
		return
	}
	row, err := a.store.GetService(id)
	if err != nil {
		respondStorageError(c, "Service", err)
		return
	}
	respondData(c, row)
}

// CreateService adds a service offering.
func (a *API) CreateService(c *gin.Context) {
	var in storage.ServiceInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateService(in)
	if err != nil {
		respondStorageError(c, "Service", err)
		return
	}
	respondData(c, row)
}

// UpdateService applies a partial update to a service offering.
func (a *API) UpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid service id")
		return
	}
	var patch storage.ServicePatch
	if !bindJSON(c, &patch) {
		return
	}
	row, err := a.store.UpdateService(id, patch)
	if err != nil {
		respondStorageError(c, "Service", err)
		return
	}
	respondData(c, row)
}

// DeleteService removes a service offering.
func (a *API) DeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid service id")
		return
	}
	if err := a.store.DeleteService(id); err != nil {
		respondStorageError(c, "Service", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
