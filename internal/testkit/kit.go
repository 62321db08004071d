// Package testkit writes spreadsheet fixtures for the tests.
package testkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Orders is a small marketplace order export.
var Orders = [][]interface{}{
	{"Order ID", "Buyer Name", "Customer_Email", "Quantity", "Ship To", "City"},
	{"1001", "Ana", "ana@example.com", 2, "Rua A, 10", "Recife"},
	{"1002", "Bruno", "bruno@example.com", 1, "Rua B, 20", "Olinda"},
	{"1003", "Carla", "carla@example.com", 5, "Rua C, 30", "Natal"},
}

// OrdersHTML is the same export as an HTML table, the way some platforms
// deliver their ".xls" reports.
const OrdersHTML = `<html>
<head><meta charset="utf-8"><title>Product Performance</title></head>
<body>
<table border="1">
<thead>
<tr><th>Product Name</th><th>Buyer</th><th>Units Sold</th><th>Recipient Address</th></tr>
</thead>
<tbody>
<tr><td>Caneca</td><td>Ana</td><td>3</td><td>Rua A, 10</td></tr>
<tr><td>Camiseta</td><td>Bruno</td><td>1</td><td>Rua B, 20</td></tr>
</tbody>
</table>
<table><tr><td>second table</td></tr></table>
</body>
</html>`

//
// WriteXLSX saves rows into dir/name (sheet "Sheet1") and returns the path.
//
func WriteXLSX(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// WriteFile saves content into dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
