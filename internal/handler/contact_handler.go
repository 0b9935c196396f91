package handler

import (
	"log"
	"net/http"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
)

// SubmitContactForm stores a contact-form message. No notification email is
// sent; the message only lands in the submissions inbox.
func (a *API) SubmitContactForm(c *gin.Context) {
	var in storage.ContactSubmissionInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateContactSubmission(in)
	if err != nil {
		respondStorageError(c, "Contact submission", err)
		return
	}
	log.Printf("contact submission #%d stored; notification email skipped (no mailer configured)", row.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message received! We will contact you soon.",
		"data":    row,
	})
}

// GetContactSubmissions lists stored messages, newest first.
func (a *API) GetContactSubmissions(c *gin.Context) {
	rows, err := a.store.GetAllContactSubmissions()
	if err != nil {
		respondStorageError(c, "Contact submission", err)
		return
	}
	respondData(c, rows)
}

// Subscribe adds a newsletter signup.
func (a *API) Subscribe(c *gin.Context) {
	var in storage.NewsletterSubscriberInput
	if !bindJSON(c, &in) {
		return
	}
	row, err := a.store.CreateNewsletterSubscriber(in)
	if err != nil {
		respondStorageError(c, "Subscriber", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully subscribed to the newsletter!",
		"data":    row,
	})
}

// GetSubscribers lists newsletter signups.
func (a *API) GetSubscribers(c *gin.Context) {
	rows, err := a.store.GetAllNewsletterSubscribers()
	if err != nil {
		respondStorageError(c, "Subscriber", err)
		return
	}
	respondData(c, rows)
}
