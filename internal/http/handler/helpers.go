package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/store"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// identity fetches the caller attached by the auth middleware. Routes
// using handlers are always registered behind RequireAuth, so a missing
// identity is a wiring bug, answered as 401 rather than a panic.
func identity(c *gin.Context) (model.Identity, bool) {
	actor, ok := middleware.GetIdentity(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return model.Identity{}, false
	}
	return actor, true
}

// notFoundOr maps store.ErrNotFound to 404 and everything else to a
// generic 500, keeping internals out of response bodies.
func notFoundOr(c *gin.Context, err error, fallback string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
