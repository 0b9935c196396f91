package handler

import (
	"net/http"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetClients lists all customers.
func (a *API) GetClients(c *gin.Context) {
	rows, err := a.store.GetAllClients()
	if err != nil {
		respondStorageError(c, "Client", err)
		return
	}
	respondData(c, rows)
}

// CreateClient adds a customer.
func (a *API) CreateClient(c *gin.Context) {
	var in storage.ClientInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateClient(in)
	if err != nil {
		respondStorageError(c, "Client", err)
		return
	}
	respondData(c, row)
}

// DeleteClient removes a customer.
func (a *API) DeleteClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid client id")
		return
	}
	if err := a.store.DeleteClient(id); err != nil {
		respondStorageError(c, "Client", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
