package v1

import (
	"fmt"
	"net/http"

	"github.com/bahtledger/backend/pkg/httputil"
	"github.com/bahtledger/backend/pkg/importer"
	"github.com/bahtledger/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

var ErrNoFilePost = fmt.Errorf("%w: you must send a file to this endpoint", models.ErrValidation)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/accounts", OptionsImportAccounts)
	r.POST("/accounts", co.ImportAccounts)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/accounts [options]
func OptionsImportAccounts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import accounts
// @Description	Imports a chart of accounts from a CSV file with name and type columns or a JSON array of {"name", "type"} objects.
// @Description	Rows with an empty name or an invalid type are skipped, accounts that already exist are left unchanged.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	AddedResponse
// @Failure		400		{object}	AddedResponse
// @Failure		500		{object}	AddedResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import/accounts [post]
func (co Controller) ImportAccounts(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		c.JSON(http.StatusBadRequest, AddedResponse{Error: errorMessage(c, ErrNoFilePost)})
		return
	}

	if err != nil {
		c.JSON(status(err), AddedResponse{Error: errorMessage(c, err)})
		return
	}

	f, err := formFile.Open()
	if err != nil {
		c.JSON(status(err), AddedResponse{Error: errorMessage(c, err)})
		return
	}
	defer f.Close()

	rows, err := importer.Parse(formFile.Filename, f)
	if err != nil {
		c.JSON(status(err), AddedResponse{Error: errorMessage(c, err)})
		return
	}

	added, err := co.Ledger.BulkImportAccounts(c.Request.Context(), rows)
	if err != nil {
		c.JSON(status(err), AddedResponse{Error: errorMessage(c, err)})
		return
	}

	c.JSON(http.StatusCreated, AddedResponse{Data: &Added{Added: added}})
}
