/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"github.com/dude333/sheetpeek"
	"github.com/dude333/sheetpeek/inspect"
	"github.com/spf13/cobra"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample [file]",
	Short: "Shows the columns and the first record of a spreadsheet",
	Long: `Reads the first rows of a spreadsheet (5 by default, see --rows) and prints
its column names and the first record. Without arguments, the first file
listed under 'files:' in the config file is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := parms(args)
		if len(p.Files) == 0 {
			_ = cmd.Help()
			return
		}
		sample(cmd, p.Files[0], p)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntP("rows", "n", sheetpeek.DefaultSampleRows, "number of data rows to read")
	bindFlag("sample_rows", sampleCmd.Flags().Lookup("rows"))
}

func sample(cmd *cobra.Command, path string, p sheetpeek.Parms) {
	rows := p.SampleRows
	if rows <= 0 {
		rows = sheetpeek.DefaultSampleRows
	}
	o := options(p, rows, cmd.ErrOrStderr())

	w, err := inspect.NewWriter(p.Format, cmd.OutOrStdout(), inspect.SampleMode)
	if err != nil {
		o.Log.Error("%v", err)
		return
	}

	if _, err := inspect.Scan([]string{path}, o, w); err != nil {
		o.Log.Error("%v", err)
	}
}
