package version

import (
	"context"
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Version of the API
//
// This is set at build time, see Makefile.
var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version       string `json:"version" example:"1.1.0"`     // the running version of the ledger backend
	SchemaVersion string `json:"schemaVersion" example:"1"` // the version of the database schema
}

// SchemaVersioner returns the schema version of the storage.
type SchemaVersioner interface {
	SchemaVersion(context.Context) (string, error)
}

func RegisterRoutes(r *gin.RouterGroup, version string, s SchemaVersioner) {
	// set the API version so that responses are correct
	apiVersion = version

	r.GET("", Get(s))
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

// @Summary		API version
// @Description	Returns the software version of the API and the schema version of the database
// @Tags			General
// @Success		200	{object}	Response
// @Failure		500	{object}	httputil.Error
// @Router			/version [get]
func Get(s SchemaVersioner) gin.HandlerFunc {
	return func(c *gin.Context) {
		schema, err := s.SchemaVersion(c.Request.Context())
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Data: Object{
				Version:       apiVersion,
				SchemaVersion: schema,
			},
		})
	}
}
