/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick [dir]",
	Short: "Selects a spreadsheet from a directory and shows a sample",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		list, err := spreadsheets(dir)
		if err != nil {
			fmt.Println("[x]", err)
			return
		}
		if len(list) == 0 {
			fmt.Println("[x] No spreadsheets found in", dir)
			return
		}

		path := promptUser(list, "Select the spreadsheet")
		if path == "" {
			return
		}
		fmt.Println()

		sample(cmd, path, parms(nil))
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
