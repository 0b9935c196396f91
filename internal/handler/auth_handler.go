package handler

import (
	"errors"
	"net/http"

	"github.com/dmapsite/internal/db"
	"github.com/dmapsite/internal/storage"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const sessionUserKey = "user_id"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userView(user *db.User) gin.H {
	return gin.H{"id": user.ID, "username": user.Username, "role": user.Role}
}

// Login checks credentials against the users table and opens a cookie
// session. The same message covers an unknown user and a bad password.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := a.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		respondStorageError(c, "User", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	respondData(c, userView(user))
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, serverErrorMessage)
		return
	}
	respondMessage(c, "Logged out")
}

// Me returns the account behind the current session.
func (a *API) Me(c *gin.Context) {
	session := sessions.Default(c)
	raw := session.Get(sessionUserKey)
	id, ok := raw.(uint)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	user, err := a.store.GetUser(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Not logged in")
			return
		}
		respondStorageError(c, "User", err)
		return
	}
	respondData(c, userView(user))
}

// AuthRequired guards endpoints that expose inbox data or accept uploads.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil {
			respondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
