package handler

import (
	"github.com/dmapsite/internal/config"
	"github.com/dmapsite/internal/storage"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store        *storage.Storage
	uploadDir    string
	uploadURL    string
	brochurePath string
}

// NewAPI constructs the handler set over the given storage.
func NewAPI(store *storage.Storage, cfg config.AppConfig) *API {
	return &API{
		store:        store,
		uploadDir:    cfg.UploadDir,
		uploadURL:    cfg.UploadURLPath,
		brochurePath: cfg.BrochurePath,
	}
}
