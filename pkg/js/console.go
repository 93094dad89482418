package js

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI implements console.log, console.warn, and console.error.
// Script output is how session scripts report widths back to the user.
type consoleAPI struct {
	out io.Writer
	err io.Writer
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", printer(c.out, ""))
	console.Set("info", printer(c.out, ""))
	console.Set("warn", printer(c.err, "WARN: "))
	console.Set("error", printer(c.err, "ERROR: "))
	vm.Set("console", console)
}

func printer(w io.Writer, prefix string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		fmt.Fprintln(w, prefix+formatArgs(call.Arguments))
		return goja.Undefined()
	}
}

// formatArgs joins arguments the way browsers do for plain values; arrays
// print their elements separated by commas.
func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
