package router

import (
	"net/http"

	"github.com/dmapsite/internal/config"
	"github.com/dmapsite/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and every route onto a gin engine.
func SetupRouter(cfg config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(handler.ErrorBoundary())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	// The store defaults to Secure cookies, which clients drop over the
	// plain-HTTP transport this server runs on.
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("dmapsite_session", store))

	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/brochure.pdf", api.DownloadBrochure)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/company", api.GetCompany)
		apiGroup.PUT("/company", api.UpdateCompany)
		apiGroup.GET("/about", api.GetAbout)
		apiGroup.PUT("/about", api.UpdateAbout)
		apiGroup.GET("/contact-info", api.GetContactInfo)
		apiGroup.PUT("/contact-info", api.UpdateContactInfo)

		apiGroup.GET("/certifications", api.GetCertifications)
		apiGroup.POST("/certifications", api.CreateCertification)
		apiGroup.DELETE("/certifications/:id", api.DeleteCertification)

		apiGroup.GET("/services", api.GetServices)
		apiGroup.GET("/services/:id", api.GetService)
		apiGroup.POST("/services", api.CreateService)
		apiGroup.PUT("/services/:id", api.UpdateService)
		apiGroup.DELETE("/services/:id", api.DeleteService)

		apiGroup.GET("/projects", api.GetProjects)
		apiGroup.GET("/projects/:id", api.GetProject)
		apiGroup.POST("/projects", api.CreateProject)
		apiGroup.PUT("/projects/:id", api.UpdateProject)
		apiGroup.DELETE("/projects/:id", api.DeleteProject)

		apiGroup.GET("/clients", api.GetClients)
		apiGroup.POST("/clients", api.CreateClient)
		apiGroup.DELETE("/clients/:id", api.DeleteClient)

		apiGroup.GET("/blog", api.GetBlogPosts)
		apiGroup.GET("/blog/:slug", api.GetBlogPostBySlug)
		apiGroup.POST("/blog", api.CreateBlogPost)
		apiGroup.PUT("/blog/:id", api.UpdateBlogPost)
		apiGroup.DELETE("/blog/:id", api.DeleteBlogPost)

		apiGroup.GET("/testimonials", api.GetTestimonials)
		apiGroup.POST("/testimonials", api.CreateTestimonial)
		apiGroup.PUT("/testimonials/:id", api.UpdateTestimonial)
		apiGroup.DELETE("/testimonials/:id", api.DeleteTestimonial)

		apiGroup.POST("/contact", api.SubmitContactForm)
		apiGroup.POST("/subscribe", api.Subscribe)

		auth := apiGroup.Group("/auth")
		{
			auth.POST("/login", api.Login)
			auth.POST("/logout", api.Logout)
			auth.GET("/me", api.Me)
		}

		// Inbox data and uploads stay behind a session.
		admin := apiGroup.Group("")
		admin.Use(handler.AuthRequired())
		{
			admin.GET("/contact-submissions", api.GetContactSubmissions)
			admin.GET("/subscribers", api.GetSubscribers)
			admin.POST("/uploads", api.UploadImage)
		}
	}

	return r
}
