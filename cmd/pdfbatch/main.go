// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfbatch CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfbatch CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfbatch",
	Short: "Extract text from PDFs and batch-rename them by content",
	Long: `pdfbatch reads the text of a PDF's leading pages and renames files in bulk
by matching a regular expression against that text, substituting captured
groups into a filename template.

Use extract to inspect what text a document yields, then rename to preview
and apply a batch rename. Renames are a dry run unless --apply is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a specific process exit code out of a command. The
// message, if any, has usually been logged already by the command itself.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// exitf builds an exitError with a formatted message.
func exitf(code int, format string, args ...any) *exitError {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfbatch.yaml or ~/.config/pdfbatch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfbatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfbatch"))
		}
	}

	viper.SetEnvPrefix("PDFBATCH")
	viper.AutomaticEnv()
	viper.SetDefault("pages", 1)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pagesFlag resolves the page limit: explicit flag, then config/env, then 1.
func pagesFlag(cmd *cobra.Command) int {
	pages, _ := cmd.Flags().GetInt("pages")
	if pages == 0 {
		pages = viper.GetInt("pages")
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
		}
		os.Exit(ee.code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
