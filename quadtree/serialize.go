package quadtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SupremeHuaji/Quadtree/geom"
)

// Serialize emits the tree's structural textual form (SPEC_FULL.md §6): a
// leaf node becomes {"type":"leaf",...}, an internal node becomes
// {"type":"internal",...} with its four children in NW, NE, SW, SE order.
// The engine only commits to this shape being observable, not to full JSON
// generality — values are formatted with Go's own %v/%q conventions rather
// than through a JSON encoder, since the engine does not own JSON
// emission/parsing (SPEC_FULL.md §1, §6).
func Serialize[V any](t *Tree[V]) string {
	var b strings.Builder
	writeNode(&b, t.root)
	return b.String()
}

// writeTask is one step of writeNode's explicit-stack walk: either a
// literal string to emit verbatim, or a node whose own emission (leaf
// text, or an internal node's prefix/children/suffix tasks) still needs
// expanding.
type writeTask[V any] struct {
	lit string
	n   *node[V]
}

// writeNode emits n's structural text iteratively: an internal node's
// "{...,"children":[", each child, the "," separators between them, and
// the closing "]}" are pushed as a sequence of tasks in reverse order, so
// popping the stack (LIFO) reproduces the same left-to-right emission a
// recursive walk would produce, with no recursion (SPEC_FULL.md §5).
func writeNode[V any](b *strings.Builder, root *node[V]) {
	stack := []writeTask[V]{{n: root}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.n == nil {
			b.WriteString(task.lit)
			continue
		}

		n := task.n
		if n.isLeaf() {
			writeLeaf(b, n)
			continue
		}

		var prefix strings.Builder
		prefix.WriteString(`{"type":"internal","boundary":`)
		writeRect(&prefix, n.boundary)
		prefix.WriteString(`,"children":[`)

		pending := make([]writeTask[V], 0, 2*len(n.children)+2)
		pending = append(pending, writeTask[V]{lit: prefix.String()})
		for i, c := range n.children {
			if i > 0 {
				pending = append(pending, writeTask[V]{lit: ","})
			}
			pending = append(pending, writeTask[V]{n: c})
		}
		pending = append(pending, writeTask[V]{lit: "]}"})

		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}
}

func writeLeaf[V any](b *strings.Builder, n *node[V]) {
	b.WriteString(`{"type":"leaf","boundary":`)
	writeRect(b, n.boundary)
	b.WriteString(`,"entries":[`)
	for i, e := range n.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"point":`)
		writePoint(b, e.point)
		b.WriteString(`,"value":`)
		b.WriteString(formatValue(e.value))
		b.WriteByte('}')
	}
	b.WriteString(`]}`)
}

func writeRect(b *strings.Builder, r geom.Rect) {
	b.WriteString(`{"x":`)
	b.WriteString(formatFloat(r.X))
	b.WriteString(`,"y":`)
	b.WriteString(formatFloat(r.Y))
	b.WriteString(`,"width":`)
	b.WriteString(formatFloat(r.Width))
	b.WriteString(`,"height":`)
	b.WriteString(formatFloat(r.Height))
	b.WriteByte('}')
}

func writePoint(b *strings.Builder, p geom.Point) {
	b.WriteString(`{"x":`)
	b.WriteString(formatFloat(p.X))
	b.WriteString(`,"y":`)
	b.WriteString(formatFloat(p.Y))
	b.WriteByte('}')
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case fmt.Stringer:
		return strconv.Quote(val.String())
	case bool:
		return strconv.FormatBool(val)
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return formatFloat(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return strconv.Quote(fmt.Sprintf("%v", val))
	}
}
