package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tablecolumnresize/pkg/editor"
	"tablecolumnresize/pkg/js"
)

type runParams struct {
	in    string
	print bool
}

var configuredRunParams runParams

var runCommand = &cobra.Command{
	Use:   "run <script.js>",
	Short: "Run an edit script",
	Long: `Run a JavaScript edit script against a document.

The script sees a global "editor" object with tables(), table(i),
insertTable(rows, cols), normalize(widths) and data(). Table objects expose
row, column, merge and resize operations. Column widths are normalized after
every operation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := loadSession(configuredRunParams.in, configuredRootParams)
		if err != nil {
			return err
		}
		return runScript(ed, args[0], configuredRunParams, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	runCommand.Flags().StringVarP(&configuredRunParams.in, "in", "i", "", "document to edit (default: empty document)")
	runCommand.Flags().BoolVarP(&configuredRunParams.print, "print", "p", false, "print the resulting document data")
}

func runScript(ed *editor.Editor, file string, p runParams, stdout, stderr io.Writer) error {
	if file == "" {
		return errors.New("no script specified")
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if err := js.NewWithOutput(ed, stdout, stderr).Run(file, string(src)); err != nil {
		return err
	}
	if p.print {
		_, err = fmt.Fprintln(stdout, ed.Data())
	}
	return err
}
