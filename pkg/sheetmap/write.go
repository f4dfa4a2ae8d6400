package sheetmap

import (
	"os"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
	"github.com/tkaric/sheetmap-go/pkg/sheetmap/writer"
)

// WriteTable serializes a generic table into a buffered single-sheet
// workbook. Settings may be nil to write without validation; when present,
// only the required-column check applies to table writes.
func (h *Handler) WriteTable(t *models.Table, settings *models.Settings, opts ...Option) ([]byte, error) {
	return h.writer(settings, opts).Table(t)
}

// WriteTableFile is WriteTable with the buffer saved to path.
func (h *Handler) WriteTableFile(path string, t *models.Table, settings *models.Settings, opts ...Option) error {
	data, err := h.WriteTable(t, settings, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		h.log.Error().Str("path", path).Err(err).Msg("cannot write workbook")
		return err
	}
	return nil
}

// WriteRecords serializes a typed record collection into a buffered
// single-sheet workbook. With nil settings the column layout is derived
// from the record type's sheet tags.
func WriteRecords[T any](h *Handler, records []T, settings *models.Settings, opts ...Option) ([]byte, error) {
	if settings == nil {
		var zero T
		derived, err := DeriveSettings(zero)
		if err != nil {
			h.log.Error().Err(err).Msg("cannot derive settings from record type")
			return nil, err
		}
		settings = derived
	}
	return writer.Records(h.writer(settings, opts), records)
}

func (h *Handler) writer(settings *models.Settings, opts []Option) *writer.Writer {
	o := applyOptions(opts)
	return &writer.Writer{
		Settings:    settings,
		StopOnError: o.stopOnError,
		Log:         h.log,
	}
}
