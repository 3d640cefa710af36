package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpark-finder/internal/form"
)

const indexTemplate = "index.html.tmpl"

// pageData is the model rendered by the index template.
type pageData struct {
	View           form.View
	Invalid        string
	PostcodeLength int
}

// GetIndex renders the empty form.
func (h *Handler) GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, pageData{
		View:           form.NewView("", form.Idle{}),
		PostcodeLength: form.PostcodeLength,
	})
}

// PostIndex handles a form submission from the page. Every render mounts a
// fresh controller, so nothing carries over between page loads.
func (h *Handler) PostIndex(c *gin.Context) {
	postcode := c.PostForm("postcode")

	ctrl := form.New(h.finder)
	defer ctrl.Close()
	ctrl.SetPostcode(postcode)

	// The request context ties the lookup to the browser connection.
	if _, err := ctrl.Submit(c.Request.Context(), postcode); err != nil {
		if errors.Is(err, form.ErrInvalidPostcode) {
			c.HTML(http.StatusUnprocessableEntity, indexTemplate, pageData{
				View:           ctrl.View(),
				Invalid:        "Please enter a 6-character postcode.",
				PostcodeLength: form.PostcodeLength,
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, indexTemplate, pageData{
		View:           ctrl.View(),
		PostcodeLength: form.PostcodeLength,
	})
}
