/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"sort"

	"github.com/dude333/sheetpeek"
	"github.com/dude333/sheetpeek/inspect"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//
// parms collects the input parameters from the command line and the
// config file. Files given as arguments replace the ones in the config.
//
func parms(args []string) sheetpeek.Parms {
	files := args
	if len(files) == 0 {
		files = viper.GetStringSlice("files")
	}

	return sheetpeek.Parms{
		Files:      files,
		Keywords:   viper.GetStringSlice("keywords"),
		Exclude:    viper.GetStringSlice("exclude"),
		Fuzzy:      viper.GetBool("fuzzy"),
		SampleRows: viper.GetInt("sample_rows"),
		Sheet:      viper.GetString("sheet"),
		Charset:    viper.GetString("charset"),
		Format:     viper.GetString("format"),
		Verbose:    viper.GetBool("verbose"),
	}
}

// options for inspect reading at most maxRows data rows; logs go to stderr.
func options(p sheetpeek.Parms, maxRows int, stderr io.Writer) inspect.Options {
	return inspect.Options{
		MaxRows: maxRows,
		Sheet:   p.Sheet,
		Charset: p.Charset,
		Log:     inspect.NewLogger(stderr, p.Verbose),
	}
}

//
// spreadsheets lists the files in dir the tool can read, sorted by name.
//
func spreadsheets(dir string) ([]string, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing "+dir)
	}

	var list []string
	for _, e := range entries {
		if e.IsDir() || !sheetpeek.IsSpreadsheet(e.Name()) {
			continue
		}
		list = append(list, filepath.Join(dir, e.Name()))
	}
	sort.Strings(list)

	return list, nil
}

//
// promptUser presents a navigable list to be selected on CLI
//
func promptUser(list []string, label string) (result string) {
	templates := &promptui.SelectTemplates{
		Help: `{{ "Use these keys to navigate:" | faint }} {{ .NextKey | faint }} ` +
			`{{ .PrevKey | faint }} {{ .PageDownKey | faint }} {{ .PageUpKey | faint }} ` +
			`{{ if .Search }} {{ "and" | faint }} {{ .SearchKey | faint }} {{ "toggles search" | faint }}{{ end }}`,
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     list,
		Templates: templates,
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	return
}
