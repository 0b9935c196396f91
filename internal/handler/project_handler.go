package handler

import (
	"net/http"
	"strings"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetProjects lists projects, optionally filtered by exact status match
// (?status=ongoing|completed; any string is accepted).
func (a *API) GetProjects(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	rows, err := a.store.GetAllProjects(status)
	if err != nil {
		respondStorageError(c, "Project", err)
		return
	}
	respondData(c, rows)
}

// GetProject returns one project.
func (a *API) GetProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project id")
		return
	}
	row, err := a.store.GetProject(id)
	if err != nil {
		respondStorageError(c, "Project", err)
		return
	}
	respondData(c, row)
}

// CreateProject adds a project.
func (a *API) CreateProject(c *gin.Context) {
	var in storage.ProjectInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateProject(in)
	if err != nil {
		respondStorageError(c, "Project", err)
		return
	}
	respondData(c, row)
}

// UpdateProject applies a partial update to a project.
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project id")
		return
	}
	var patch storage.ProjectPatch
	if !bindJSON(c, &patch) {
		return
	}
	row, err := a.store.UpdateProject(id, patch)
	if err != nil {
		respondStorageError(c, "Project", err)
		return
	}
	respondData(c, row)
}

// DeleteProject removes a project.
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project id")
		return
	}
	if err := a.store.DeleteProject(id); err != nil {
		respondStorageError(c, "Project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
