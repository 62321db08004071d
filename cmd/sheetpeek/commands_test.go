package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dude333/sheetpeek/internal/testkit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetConfig brings viper and the command flags back to their startup state.
func resetConfig() {
	viper.Reset()
	setDefaults()
	for _, b := range bindings {
		_ = viper.BindPFlag(b.key, b.flag)
	}

	// slice flags append on Set, tests pass those through the config file
	reset := func(f *pflag.Flag) {
		if f.Changed && f.Value.Type() != "stringSlice" {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{sampleCmd, scanCmd, pickCmd} {
		c.Flags().VisitAll(reset)
	}
}

// run executes the command line with the given config file contents and
// returns what was written to stdout and stderr.
func run(t *testing.T, config string, args ...string) (stdout, stderr string) {
	t.Helper()
	resetConfig()
	t.Cleanup(resetConfig)

	cfg := testkit.WriteFile(t, t.TempDir(), "sheetpeek.yaml", config)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	rootCmd.SetArgs(append([]string{"--config", cfg}, args...))
	require.NoError(t, rootCmd.Execute())

	return out.String(), errOut.String()
}

func orders(n int) [][]interface{} {
	rows := [][]interface{}{{"Order ID", "Buyer Name", "City"}}
	for i := 1; i <= n; i++ {
		rows = append(rows, []interface{}{1000 + i, fmt.Sprintf("Buyer %d", i), "Recife"})
	}
	return rows
}

func TestScanCommand(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.xlsx")
	path := testkit.WriteXLSX(t, dir, "orders.xlsx", testkit.Orders)

	stdout, stderr := run(t, "", "scan", "--quiet", missing, path)

	assert.Equal(t, `
--- Analyzing: missing.xlsx ---
File not found.

--- Analyzing: orders.xlsx ---
Columns found:
- Order ID
- Buyer Name
- Customer_Email
- Quantity
- Ship To
- City
Potential Customer Fields: "Buyer Name", "Customer_Email", "Ship To", "City"
`, stdout)
	assert.Contains(t, stderr, "[WARN] 1 of 2 files could not be read\n")
	assert.NotContains(t, stderr, "[ ]", "no progress with --quiet")
}

func TestScanCommand_Progress(t *testing.T) {
	path := testkit.WriteXLSX(t, t.TempDir(), "orders.xlsx", testkit.Orders)

	stdout, stderr := run(t, "exclude: [ship]\n", "scan", path)
	assert.Contains(t, stdout, `Potential Customer Fields: "Buyer Name", "Customer_Email", "City"`)
	assert.Contains(t, stderr, "[>] Using config file: ")
	assert.Contains(t, stderr, "[ ] orders.xlsx\r[✓]\n")
	assert.NotContains(t, stderr, "[WARN]")
}

func TestScanCommand_NoFiles(t *testing.T) {
	stdout, stderr := run(t, "", "scan")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[ERROR] no files")
}

func TestSampleCommand(t *testing.T) {
	path := testkit.WriteXLSX(t, t.TempDir(), "orders.xlsx", orders(8))

	stdout, stderr := run(t, "sample_rows: 3\n", "sample", "--verbose", "--rows", "0", path)
	assert.Equal(t, "Columns found:\n"+
		"- Order ID\n"+
		"- Buyer Name\n"+
		"- City\n"+
		"\n"+
		"Sample Data (Row 0):\n"+
		"  Order ID: 1001\n"+
		"  Buyer Name: Buyer 1\n"+
		"  City: Recife\n", stdout)
	assert.Contains(t, stderr, "3 columns, 5 rows read as xlsx", "--rows 0 falls back to 5 rows")

	_, stderr = run(t, "", "sample", "--verbose", "--rows", "2", path)
	assert.Contains(t, stderr, "3 columns, 2 rows read as xlsx")
}

func TestSampleCommand_Missing(t *testing.T) {
	stdout, stderr := run(t, "", "sample", filepath.Join(t.TempDir(), "missing.xls"))
	assert.Equal(t, "File not found.\n", stdout)
	assert.NotContains(t, stderr, "[ERROR]")
}

func TestSampleCommand_BadFormat(t *testing.T) {
	path := testkit.WriteXLSX(t, t.TempDir(), "orders.xlsx", testkit.Orders)

	stdout, stderr := run(t, "", "sample", "--format", "csv", path)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `[ERROR] unknown format "csv" (text|yaml)`)
}

func TestSampleCommand_YAML(t *testing.T) {
	path := testkit.WriteXLSX(t, t.TempDir(), "orders.xlsx", testkit.Orders)

	stdout, _ := run(t, "", "sample", "-r", "yaml", path)
	assert.Contains(t, stdout, "files:\n- file: "+path+"\n  status: ok\n")
	assert.Contains(t, stdout, "    Buyer Name: Ana\n")
}
