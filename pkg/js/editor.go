package js

import (
	"fmt"

	"github.com/dop251/goja"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/editor"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

// editorContext holds the shared state of the editor bindings. It caches
// one proxy per table so scripts can compare tables with ===.
type editorContext struct {
	vm    *goja.Runtime
	ed    *editor.Editor
	cache map[*model.Node]*goja.Object
}

// registerEditor sets up the global `editor` object on the goja runtime.
func registerEditor(vm *goja.Runtime, ed *editor.Editor) *editorContext {
	ctx := &editorContext{vm: vm, ed: ed, cache: make(map[*model.Node]*goja.Object)}

	obj := vm.NewObject()
	obj.Set("tables", func(call goja.FunctionCall) goja.Value {
		tables := ed.Tables()
		proxies := make([]interface{}, len(tables))
		for i, t := range tables {
			proxies[i] = ctx.tableProxy(t)
		}
		return vm.NewArray(proxies...)
	})
	obj.Set("table", func(call goja.FunctionCall) goja.Value {
		t := ed.Table(int(call.Argument(0).ToInteger()))
		if t == nil {
			return goja.Null()
		}
		return ctx.tableProxy(t)
	})
	obj.Set("insertTable", func(call goja.FunctionCall) goja.Value {
		t, err := ed.InsertTable(int(call.Argument(0).ToInteger()), int(call.Argument(1).ToInteger()))
		ctx.check(err)
		return ctx.tableProxy(t)
	})
	obj.Set("data", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(ed.Data())
	})
	obj.Set("normalize", func(call goja.FunctionCall) goja.Value {
		return ctx.floats(columnresize.NormalizeColumnWidths(ctx.widths(call.Argument(0))))
	})
	vm.Set("editor", obj)
	return ctx
}

// check turns a Go error into a thrown JS error.
func (ctx *editorContext) check(err error) {
	if err != nil {
		panic(ctx.vm.NewGoError(err))
	}
}

func (ctx *editorContext) tableProxy(t *model.Node) *goja.Object {
	if obj, ok := ctx.cache[t]; ok {
		return obj
	}
	vm, ed := ctx.vm, ctx.ed
	obj := vm.NewObject()

	obj.Set("columnCount", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(table.Utils{}.ColumnCount(t))
	})
	obj.Set("rowCount", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(len(table.Map(t).Rows))
	})
	obj.Set("columnWidths", func(call goja.FunctionCall) goja.Value {
		return ctx.floats(ed.ColumnWidths(t))
	})
	obj.Set("tableWidth", func(call goja.FunctionCall) goja.Value {
		v, ok := t.GetAttribute(model.AttrTableWidth)
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(v)
	})
	obj.Set("setColumnWidths", func(call goja.FunctionCall) goja.Value {
		ctx.check(ed.SetColumnWidths(t, ctx.widths(call.Argument(0))))
		return goja.Undefined()
	})
	obj.Set("insertRow", func(call goja.FunctionCall) goja.Value {
		ctx.check(ed.InsertRow(t, int(call.Argument(0).ToInteger())))
		return goja.Undefined()
	})
	obj.Set("removeRow", func(call goja.FunctionCall) goja.Value {
		ctx.check(ed.RemoveRow(t, int(call.Argument(0).ToInteger())))
		return goja.Undefined()
	})
	obj.Set("insertColumn", func(call goja.FunctionCall) goja.Value {
		ctx.check(ed.InsertColumns(t, int(call.Argument(0).ToInteger()), ctx.count(call.Argument(1))))
		return goja.Undefined()
	})
	obj.Set("removeColumn", func(call goja.FunctionCall) goja.Value {
		ctx.check(ed.RemoveColumns(t, int(call.Argument(0).ToInteger()), ctx.count(call.Argument(1))))
		return goja.Undefined()
	})
	obj.Set("mergeCellRight", func(call goja.FunctionCall) goja.Value {
		cell := ctx.cell(t, call.Argument(0), call.Argument(1))
		merged, err := ed.MergeCellRight(cell)
		ctx.check(err)
		return vm.ToValue(merged)
	})
	obj.Set("resize", func(call goja.FunctionCall) goja.Value {
		cell := ctx.cell(t, call.Argument(0), call.Argument(1))
		r, err := ed.BeginResize(ed.Mapper().ToViewElement(cell))
		ctx.check(err)
		ctx.check(r.Move(call.Argument(2).ToFloat()))
		ctx.check(r.Commit())
		return ctx.floats(ed.ColumnWidths(t))
	})
	obj.Set("remove", func(call goja.FunctionCall) goja.Value {
		ctx.check(ed.RemoveTable(t))
		return goja.Undefined()
	})

	ctx.cache[t] = obj
	return obj
}

// cell resolves (row, index) to the index-th cell element of a row.
func (ctx *editorContext) cell(t *model.Node, row, index goja.Value) *model.Node {
	rows := table.Map(t).Rows
	r, i := int(row.ToInteger()), int(index.ToInteger())
	if r < 0 || r >= len(rows) {
		ctx.check(fmt.Errorf("row %d out of range", r))
	}
	cells := rows[r].ChildrenNamed(model.TableCell)
	if i < 0 || i >= len(cells) {
		ctx.check(fmt.Errorf("cell %d out of range in row %d", i, r))
	}
	return cells[i]
}

func (ctx *editorContext) count(v goja.Value) int {
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return 1
	}
	return int(v.ToInteger())
}

// widths reads an array of numbers or width strings such as "25%" and "auto".
func (ctx *editorContext) widths(v goja.Value) []columnresize.Width {
	var items []interface{}
	if err := ctx.vm.ExportTo(v, &items); err != nil {
		ctx.check(fmt.Errorf("expected an array of widths: %w", err))
	}
	out := make([]columnresize.Width, len(items))
	for i, item := range items {
		switch w := item.(type) {
		case int64:
			out[i] = columnresize.Fixed(float64(w))
		case float64:
			out[i] = columnresize.Fixed(w)
		default:
			out[i] = columnresize.ParseWidth(fmt.Sprint(w))
		}
	}
	return out
}

func (ctx *editorContext) floats(values []float64) goja.Value {
	items := make([]interface{}, len(values))
	for i, v := range values {
		items[i] = v
	}
	return ctx.vm.NewArray(items...)
}
