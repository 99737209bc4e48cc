package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/budget-buddy/backend/internal/httputil"
	"github.com/budget-buddy/backend/internal/importer"
	"github.com/budget-buddy/backend/internal/importer/parser/legacy"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ImportQuery struct {
	DryRun bool `form:"dryRun" example:"false"` // Only parse the file and return the statistics
}

// Import describes the outcome of an import.
type Import struct {
	DryRun bool           `json:"dryRun" example:"false"` // True if nothing was changed
	Stats  importer.Stats `json:"stats"`
}

type ImportResponse struct {
	Data Import `json:"data"`
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", co.Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import
// @Description	Replaces all data with a backup of the browser app or an export of this API
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			file	formData	file	true	"File to import"
// @Param			dryRun	query		bool	false	"Only parse the file"
// @Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	var query ImportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abort(c, fmt.Errorf("%w: %s", errInvalidQuery, err))
		return
	}

	f, err := getUploadedFile(c, ".json")
	if err != nil {
		abort(c, err)
		return
	}
	defer f.Close()

	resources, err := legacy.Parse(f, co.Rules, co.now())
	if err != nil {
		abort(c, fmt.Errorf("%w: %s", errImportFile, err))
		return
	}

	if query.DryRun {
		c.JSON(http.StatusOK, ImportResponse{Data: Import{DryRun: true, Stats: resources.Stats}})
		return
	}

	previous := co.Store.Snapshot()
	if err := co.Store.Import(resources.Ledger); err != nil {
		abort(c, err)
		return
	}

	if err := co.Bank.Import(resources.Savings); err != nil {
		// The ledger must not keep transfers the piggy bank does not know about
		if rollbackErr := co.Store.Import(previous); rollbackErr != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(rollbackErr).Msg("restoring the ledger after failed import")
		}

		abort(c, err)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Int("expenses", resources.Stats.Expenses).Int("goals", resources.Stats.Goals).Msg("import finished")
	c.JSON(http.StatusOK, ImportResponse{Data: Import{Stats: resources.Stats}})
}
