package sheetmap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
	"github.com/tkaric/sheetmap-go/pkg/sheetmap/parser"
)

// ReadTable reads one sheet of the workbook at path into a generic string
// table. Settings may be nil to read without validation.
func (h *Handler) ReadTable(path string, settings *models.Settings, opts ...Option) (*models.Table, error) {
	f, err := h.openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return h.reader(settings, opts).Table(f)
}

// ReadTableFrom is ReadTable over an in-memory or streamed workbook.
func (h *Handler) ReadTableFrom(r io.Reader, settings *models.Settings, opts ...Option) (*models.Table, error) {
	f, err := h.openReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return h.reader(settings, opts).Table(f)
}

// ReadRows reads one sheet of the workbook at path into a Document of
// mapped rows, reconciling header names against the settings' column
// definitions and the trailing repeated-column region.
//
// Under StopOnError a blank required cell ends the read but still returns
// the document built so far together with the error; every other violation
// returns nil.
func (h *Handler) ReadRows(path string, settings *models.Settings, opts ...Option) (*models.Document, error) {
	f, err := h.openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return h.reader(settings, opts).Rows(f)
}

// ReadRowsFrom is ReadRows over an in-memory or streamed workbook.
func (h *Handler) ReadRowsFrom(r io.Reader, settings *models.Settings, opts ...Option) (*models.Document, error) {
	f, err := h.openReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return h.reader(settings, opts).Rows(f)
}

// ReadTyped reads mapped rows like Handler.ReadRows and hands the document
// to mapper for conversion into concrete records. The mapper only runs on a
// fully read document.
func ReadTyped[T any](h *Handler, path string, settings *models.Settings, mapper func(*models.Document) ([]T, error), opts ...Option) ([]T, error) {
	doc, err := h.ReadRows(path, settings, opts...)
	if err != nil {
		return nil, err
	}
	out, err := mapper(doc)
	if err != nil {
		h.log.Error().Err(err).Msg("record mapping failed")
		return nil, err
	}
	return out, nil
}

func (h *Handler) reader(settings *models.Settings, opts []Option) *parser.Reader {
	o := applyOptions(opts)
	return &parser.Reader{
		Settings:    settings,
		Sheet:       o.sheet,
		StopOnError: o.stopOnError,
		Log:         h.log,
	}
}

func (h *Handler) openFile(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", models.ErrSourceNotFound, path)
		} else {
			err = fmt.Errorf("%w: %s: %v", models.ErrSourceNotFound, path, err)
		}
		h.log.Error().Str("path", path).Err(err).Msg("cannot open source")
		return nil, err
	}
	return f, nil
}

func (h *Handler) openReader(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		err = fmt.Errorf("%w: %v", models.ErrSourceNotFound, err)
		h.log.Error().Err(err).Msg("cannot open source")
		return nil, err
	}
	return f, nil
}
