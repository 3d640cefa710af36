package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpark-finder/internal/form"
	"carpark-finder/internal/session"
)

type sessionResponse struct {
	ID    string    `json:"id"`
	State form.View `json:"state"`
}

type postcodeRequest struct {
	Postcode string `json:"postcode"`
}

// CreateSession mounts a new form and returns its ID.
func (h *Handler) CreateSession(c *gin.Context) {
	id, ctrl := h.sessions.Create()
	c.JSON(http.StatusCreated, sessionResponse{ID: id, State: ctrl.View()})
}

// GetSession returns the current view-state of a session.
func (h *Handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	ctrl, ok := h.lookup(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse{ID: id, State: ctrl.View()})
}

// PutPostcode records the input text without submitting it.
func (h *Handler) PutPostcode(c *gin.Context) {
	id := c.Param("id")
	ctrl, ok := h.lookup(c, id)
	if !ok {
		return
	}

	var req postcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctrl.SetPostcode(req.Postcode)
	c.JSON(http.StatusOK, sessionResponse{ID: id, State: ctrl.View()})
}

// SubmitSession starts a lookup and answers while it is still pending.
func (h *Handler) SubmitSession(c *gin.Context) {
	id := c.Param("id")
	ctrl, ok := h.lookup(c, id)
	if !ok {
		return
	}

	var req postcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := ctrl.SubmitAsync(h.ctx, req.Postcode)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, sessionResponse{ID: id, State: ctrl.View()})
	case errors.Is(err, form.ErrInvalidPostcode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, form.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, form.ErrClosed):
		c.JSON(http.StatusNotFound, gin.H{"error": session.ErrNotFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// DeleteSession unmounts a form, cancelling any pending lookup.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) lookup(c *gin.Context, id string) (*form.Controller, bool) {
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return ctrl, true
}
