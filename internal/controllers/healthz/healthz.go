package healthz

import (
	"net/http"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger checks the connection to the database.
type Pinger interface {
	Ping() error
}

func RegisterRoutes(r *gin.RouterGroup, db Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler reporting the application health.
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500	{object}	httputil.HTTPError
//	@Router			/healthz [get]
func Get(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Ping()
		if err != nil {
			log.Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusInternalServerError, httputil.HTTPError{
				Error: "the database is not reachable",
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
