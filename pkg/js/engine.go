package js

import (
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"

	"tablecolumnresize/pkg/editor"
)

// Engine executes JavaScript against an edit session.
type Engine struct {
	vm *goja.Runtime
	ed *editor.Editor
}

// New creates a new JS engine with a fresh goja runtime bound to ed.
// console output goes to stdout and stderr.
func New(ed *editor.Editor) *Engine {
	return NewWithOutput(ed, os.Stdout, os.Stderr)
}

// NewWithOutput is New with explicit console writers.
func NewWithOutput(ed *editor.Editor, stdout, stderr io.Writer) *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, ed: ed}

	c := &consoleAPI{out: stdout, err: stderr}
	c.register(vm)
	registerEditor(vm, ed)

	return e
}

// Run executes script. name identifies the script in errors.
func (e *Engine) Run(name, script string) error {
	if _, err := e.vm.RunScript(name, script); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// Eval executes an expression and returns its value exported to Go.
func (e *Engine) Eval(expr string) (interface{}, error) {
	v, err := e.vm.RunString(expr)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	return v.Export(), nil
}
