// Package version serves the version of the running backend.
package version

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the Budget Buddy backend
}

// RegisterRoutes registers the version endpoint. version is usually set at
// build time.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.GET("", Get(version))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler responding with the version.
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	Response
//	@Router			/version [get]
func Get(version string) gin.HandlerFunc {
	response := Response{Data: Object{Version: version}}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
