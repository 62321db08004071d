/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dude333/sheetpeek/inspect"
	"github.com/dude333/sheetpeek/progress"
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Lists the columns of each file and flags the customer fields",
	Long: `Reads every file in order and prints its columns and the ones whose name
contains a customer keyword (name, buyer, customer, recipient, ship, city,
email, address by default). A missing or unreadable file is reported and the
next one is processed.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := parms(args)
		o := options(p, 0, cmd.ErrOrStderr())
		if len(p.Files) == 0 {
			o.Log.Error("no files: pass them as arguments or list them under 'files:' in the config file")
			return
		}

		w, err := inspect.NewWriter(p.Format, cmd.OutOrStdout(), inspect.ScanMode)
		if err != nil {
			o.Log.Error("%v", err)
			return
		}

		o.Classifier = inspect.NewKeywords(p.Keywords, p.Exclude, p.Fuzzy)
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			o.Progress = progress.New(cmd.ErrOrStderr())
			o.Progress.Cursor(false)
			defer o.Progress.Cursor(true)
		}

		failed, err := inspect.Scan(p.Files, o, w)
		if err != nil {
			o.Log.Error("%v", err)
			return
		}
		if failed > 0 {
			o.Log.Warn("%d of %d files could not be read", failed, len(p.Files))
		}
	},
	Example: func() string {
		return fmt.Sprintf("%s scan orders.xlsx \"Business Advisor - Product - Performance .xls\" --exclude product", filepath.Base(os.Args[0]))
	}(),
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolP("fuzzy", "z", false, "also match keywords with one typo (keywords of 5+ letters)")
	scanCmd.Flags().StringSliceP("exclude", "x", nil, "never flag columns containing these words")
	scanCmd.Flags().StringSliceP("keywords", "k", nil, "customer keywords (replace the default list)")
	scanCmd.Flags().BoolP("quiet", "q", false, "no progress on stderr")

	for _, key := range []string{"fuzzy", "exclude", "keywords"} {
		bindFlag(key, scanCmd.Flags().Lookup(key))
	}
}
