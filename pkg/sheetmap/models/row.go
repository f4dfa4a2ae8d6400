package models

// Row is one mapped data row of a sheet.
type Row struct {
	// Number is the 1-based data row number: the physical row index minus
	// the header row, so the first row under the header is 1. Rows skipped
	// as fully blank still advance the numbering of later rows.
	Number int `json:"number"`
	// Cells holds the mapped cells in header column order.
	Cells []Cell `json:"cells"`
}

// Document is the result of a typed read: every mapped, non-blank data row
// of one sheet. The caller owns it exclusively once returned.
type Document struct {
	Rows []Row `json:"rows"`
}
