package sheetmap

import "github.com/tkaric/sheetmap-go/pkg/sheetmap/models"

// The error kinds shared by all operations, re-exported from models for
// callers that only import the facade. Match them with errors.Is; cell-level
// violations additionally carry row and column via *models.CellError.
var (
	ErrSourceNotFound    = models.ErrSourceNotFound
	ErrSheetNotFound     = models.ErrSheetNotFound
	ErrHeaderCellBlank   = models.ErrHeaderCellBlank
	ErrRowHasBlankCell   = models.ErrRowHasBlankCell
	ErrRequiredCellEmpty = models.ErrRequiredCellEmpty
	ErrNoColumns         = models.ErrNoColumns
	ErrNoData            = models.ErrNoData
)
