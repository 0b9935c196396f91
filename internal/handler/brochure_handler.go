package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const brochureFileName = "DMAP-Construction-Brochure.pdf"

const brochurePlaceholder = "This is a placeholder for the DMAP Construction brochure PDF.\n\n" +
	"In a production environment, this would be an actual PDF document with information " +
	"about the company's services, projects, and contact details."

// DownloadBrochure streams the brochure file when it exists. Without one it
// serves the placeholder text under PDF headers so clients that expect a
// download keep working.
func (a *API) DownloadBrochure(c *gin.Context) {
	if info, err := os.Stat(a.brochurePath); err == nil && !info.IsDir() {
		c.FileAttachment(a.brochurePath, brochureFileName)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+brochureFileName+`"`)
	c.Data(http.StatusOK, "application/pdf", []byte(brochurePlaceholder))
}
