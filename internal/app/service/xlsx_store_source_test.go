package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeStoreSheet(t *testing.T, rows []string) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Loja"))
	for i, v := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}

	path := filepath.Join(t.TempDir(), "lojas.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestXLSXStoreSource_FetchStoreColumn(t *testing.T) {
	path := writeStoreSheet(t, []string{"Loja Centro", " Loja Norte ", "Loja Centro"})
	source := &XLSXStoreSource{Path: path}

	values, err := source.FetchStoreColumn(context.Background())
	require.NoError(t, err)

	// Raw column values; normalization happens in the store service.
	assert.Equal(t, []string{"Loja Centro", " Loja Norte ", "Loja Centro"}, values)
}

func TestXLSXStoreSource_HeaderOnly(t *testing.T) {
	path := writeStoreSheet(t, nil)
	source := &XLSXStoreSource{Path: path}

	values, err := source.FetchStoreColumn(context.Background())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestXLSXStoreSource_MissingFile(t *testing.T) {
	source := &XLSXStoreSource{Path: filepath.Join(t.TempDir(), "missing.xlsx")}

	_, err := source.FetchStoreColumn(context.Background())
	assert.Error(t, err)
}
