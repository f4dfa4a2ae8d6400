package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkaric/sheetmap-go/pkg/sheetmap/models"
)

func TestTableWritesHeaderAndRows(t *testing.T) {
	log, buf := captureLog()
	w := &Writer{Log: log}

	data, err := w.Table(&models.Table{
		ColumnNames: []string{"Name", "Street"},
		Rows: [][]string{
			{"Alice", "Main St 1"},
			{"Bob", "Side St 2"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, logLines(buf))

	rows := sheetRows(t, data)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Street"}, rows[0])
	assert.Equal(t, []string{"Alice", "Main St 1"}, rows[1])
	assert.Equal(t, []string{"Bob", "Side St 2"}, rows[2])
}

func TestTableWithoutRowsIsAnError(t *testing.T) {
	log, buf := captureLog()
	w := &Writer{Log: log}

	for _, table := range []*models.Table{
		nil,
		{ColumnNames: []string{"Name"}},
	} {
		data, err := w.Table(table)
		assert.Nil(t, data)
		assert.ErrorIs(t, err, models.ErrNoData)
	}
	assert.Equal(t, 2, logLines(buf))
}

func TestTableRequiredCheck(t *testing.T) {
	table := &models.Table{
		ColumnNames: []string{"Name", "Street"},
		Rows:        [][]string{{"Alice", ""}},
	}
	settings := models.NewSettings().Column("Street", "Street", models.Required)

	t.Run("continue logs and still writes", func(t *testing.T) {
		log, buf := captureLog()
		w := &Writer{Settings: settings, Log: log}

		data, err := w.Table(table)
		require.NoError(t, err)
		assert.Equal(t, 1, logLines(buf))

		rows := sheetRows(t, data)
		require.Len(t, rows, 2)
	})

	t.Run("stop returns nothing", func(t *testing.T) {
		log, _ := captureLog()
		w := &Writer{Settings: settings, StopOnError: true, Log: log}

		data, err := w.Table(table)
		assert.Nil(t, data)
		assert.ErrorIs(t, err, models.ErrRequiredCellEmpty)
	})
}

func TestTableIgnoresEmptyCellPolicy(t *testing.T) {
	// Unlike record writes, table writes only enforce required columns.
	log, buf := captureLog()
	w := &Writer{Settings: models.NewSettings(), Log: log}

	data, err := w.Table(&models.Table{
		ColumnNames: []string{"Name", "Street"},
		Rows:        [][]string{{"Alice", ""}},
	})
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Equal(t, 0, logLines(buf))
}
