// Package scripting compiles user-supplied JavaScript expressions into
// quadtree.Filter predicates, adapted from the teacher's extension runner
// (wudi-pdfkit/extensions/javascript_runner.go) and running on the same
// goja VM the teacher uses for its own scripted content-stream filters.
package scripting

import (
	"github.com/dop251/goja"
	"github.com/pkg/errors"

	"github.com/SupremeHuaji/Quadtree/geom"
)

// Predicate is the shape quadtree.Filter expects.
type Predicate[V any] func(geom.Point, V) bool

// CompilePredicate compiles expr, a JavaScript boolean expression that may
// reference the free variables x, y (the point's coordinates) and value
// (the entry's payload, exposed to the script as-is), into a Predicate. The
// expression is compiled once up front so evaluation errors at predicate-
// construction time are distinguished from per-entry runtime errors (which
// make that single entry evaluate to false rather than abort the filter).
func CompilePredicate[V any](expr string) (Predicate[V], error) {
	program, err := goja.Compile("predicate", "("+expr+")", true)
	if err != nil {
		return nil, errors.Wrap(err, "compile predicate script")
	}

	return func(p geom.Point, value V) bool {
		vm := goja.New()
		vm.Set("x", p.X)
		vm.Set("y", p.Y)
		vm.Set("value", value)

		result, err := vm.RunProgram(program)
		if err != nil {
			return false
		}
		return result.ToBoolean()
	}, nil
}
