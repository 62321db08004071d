/*
Copyright © 2021 Adriano P <dev@dude333.com>
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dude333/sheetpeek"
	"github.com/dude333/sheetpeek/progress"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sheetpeek",
	Short: "Shows the columns of spreadsheet files",
	Long: `Opens spreadsheet files (xlsx, xls or HTML tables saved as xls), prints
their column names, a sample record and the columns that look like customer
information. Files are only read, never changed.`,
}

// binding links a config key to the flag that overrides it.
type binding struct {
	key  string
	flag *pflag.Flag
}

var bindings []binding

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("[x]", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./.sheetpeek.yaml or $HOME/.sheetpeek.yaml)")
	pf.StringP("format", "r", "text", "report format: text|yaml")
	pf.StringP("sheet", "t", "", "sheet name (default: the first one)")
	pf.StringP("charset", "c", "", "text encoding of legacy .xls files (default: utf-8)")
	pf.BoolP("verbose", "v", false, "show debug messages on stderr")

	for _, key := range []string{"format", "sheet", "charset", "verbose"} {
		bindFlag(key, pf.Lookup(key))
	}

	setDefaults()
}

func bindFlag(key string, flag *pflag.Flag) {
	bindings = append(bindings, binding{key: key, flag: flag})
	_ = viper.BindPFlag(key, flag)
}

func setDefaults() {
	viper.SetDefault("keywords", sheetpeek.DefaultKeywords)
	viper.SetDefault("sample_rows", sheetpeek.DefaultSampleRows)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	status := progress.New(rootCmd.ErrOrStderr())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println("[x]", err)
			os.Exit(1)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".sheetpeek")
	}

	viper.SetEnvPrefix("sheetpeek")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		status.Status("Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		status.Warning("%v", err)
	}
}
