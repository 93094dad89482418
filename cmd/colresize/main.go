// Command colresize normalizes column widths, renders tables, and runs edit
// scripts against table documents.
package main

import (
	"fmt"
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tablecolumnresize/pkg/editor"
)

type rootParams struct {
	logLevel string
	width    float64
}

var configuredRootParams = rootParams{logLevel: "info", width: 800}

var rootCommand = &cobra.Command{
	Use:           path.Base(os.Args[0]),
	Short:         "Table column width tools",
	Long:          "Normalize, render, and edit the column widths of document tables.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCommand.PersistentFlags().StringVar(&configuredRootParams.logLevel, "log-level", configuredRootParams.logLevel, "set log level (debug, info, warn, error)")
	rootCommand.PersistentFlags().Float64Var(&configuredRootParams.width, "width", configuredRootParams.width, "viewport width in pixels")
	rootCommand.AddCommand(normalizeCommand, renderCommand, runCommand)
}

// newLogger builds the logger shared by all subcommands.
func newLogger(p rootParams) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(p.logLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.Out = os.Stderr
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l, nil
}

// loadSession reads a data file into a new editing session. An empty path
// starts from an empty document.
func loadSession(file string, p rootParams) (*editor.Editor, error) {
	logger, err := newLogger(p)
	if err != nil {
		return nil, err
	}
	cfg := editor.Config{ViewportWidth: p.width, Logger: logger}
	if file == "" {
		return editor.New(cfg), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ed, err := editor.Load(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", file, err)
	}
	return ed, nil
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
