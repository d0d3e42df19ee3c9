package healthz

import (
	"context"
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Pinger verifies that the storage is reachable.
type Pinger interface {
	Ping(context.Context) error
}

func RegisterRoutes(r *gin.RouterGroup, p Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(p))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.Error
// @Router			/healthz [get]
func Get(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := p.Ping(c.Request.Context())
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
