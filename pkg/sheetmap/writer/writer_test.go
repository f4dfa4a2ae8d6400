package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// captureLog returns a logger writing JSON events into the buffer.
func captureLog() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf), buf
}

func logLines(buf *bytes.Buffer) int {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "\n"))
}

// sheetRows reads the written workbook back into raw string rows.
func sheetRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1, "written workbook has exactly one sheet")

	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	return rows
}
