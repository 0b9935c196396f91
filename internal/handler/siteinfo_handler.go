package handler

import (
	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetCompany returns the company profile.
func (a *API) GetCompany(c *gin.Context) {
	row, err := a.store.GetCompany()
	if err != nil {
		respondStorageError(c, "Company", err)
		return
	}
	respondData(c, row)
}

// UpdateCompany upserts the company profile.
func (a *API) UpdateCompany(c *gin.Context) {
	var in storage.CompanyInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.UpdateCompany(in)
	if err != nil {
		respondStorageError(c, "Company", err)
		return
	}
	respondData(c, row)
}

// GetAbout returns the about section.
func (a *API) GetAbout(c *gin.Context) {
	row, err := a.store.GetAbout()
	if err != nil {
		respondStorageError(c, "About", err)
		return
	}
	respondData(c, row)
}

// UpdateAbout upserts the about section.
func (a *API) UpdateAbout(c *gin.Context) {
	var in storage.AboutInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.UpdateAbout(in)
	if err != nil {
		respondStorageError(c, "About", err)
		return
	}
	respondData(c, row)
}

// GetContactInfo returns the contact details.
func (a *API) GetContactInfo(c *gin.Context) {
	row, err := a.store.GetContact()
	if err != nil {
		respondStorageError(c, "Contact", err)
		return
	}
	respondData(c, row)
}

// UpdateContactInfo upserts the contact details.
func (a *API) UpdateContactInfo(c *gin.Context) {
	var in storage.ContactInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.UpdateContact(in)
	if err != nil {
		respondStorageError(c, "Contact", err)
		return
	}
	respondData(c, row)
}
