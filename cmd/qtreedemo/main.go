// Command qtreedemo drives the quadtree engine from the command line,
// shaped after the teacher's own single-file cmd/scantest tool
// (wudi-pdfkit/cmd/scantest/main.go): parse argv, build one pipeline, print
// results, exit.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/SupremeHuaji/Quadtree/config"
	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/observability"
	"github.com/SupremeHuaji/Quadtree/quadtree"
	"github.com/SupremeHuaji/Quadtree/render"
	"github.com/SupremeHuaji/Quadtree/scripting"
	"github.com/SupremeHuaji/Quadtree/snapshot"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if path := os.Getenv("QTREEDEMO_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	boundary := geom.Rect{
		X: cfg.Boundary.X, Y: cfg.Boundary.Y,
		Width: cfg.Boundary.Width, Height: cfg.Boundary.Height,
	}
	t, err := quadtree.New[int](boundary, cfg.Capacity)
	if err != nil {
		fatal(err)
	}
	t.WithLogger(observability.NewColorLogger(os.Stderr))
	seedRandom(t, 200)

	switch os.Args[1] {
	case "query":
		runQuery(t)
	case "knn":
		runKNN(t)
	case "hotspot":
		runHotspot(t)
	case "moran":
		runMoran(t, cfg)
	case "dbscan":
		runDBSCAN(t, cfg)
	case "render":
		runRender(t)
	case "serialize":
		runSerialize(t)
	case "filter":
		runFilter(t, cfg)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: qtreedemo <query|knn|hotspot|moran|dbscan|render|serialize|filter>")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "qtreedemo:", err)
	os.Exit(1)
}

func seedRandom(t *quadtree.Tree[int], n int) {
	b := t.Boundary()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		p := geom.Point{
			X: b.X + r.Float32()*b.Width,
			Y: b.Y + r.Float32()*b.Height,
		}
		t.Insert(p, i)
	}
}

func highlight(s string) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return color.New(color.FgCyan, color.Bold).Sprint(s)
	}
	return s
}

func runQuery(t *quadtree.Tree[int]) {
	b := t.Boundary()
	region := geom.Rect{X: b.X, Y: b.Y, Width: b.Width / 2, Height: b.Height / 2}
	hits := t.Query(region)
	fmt.Printf("%s matched %s entries\n", highlight("query"), humanize.Comma(int64(len(hits))))
}

func runKNN(t *quadtree.Tree[int]) {
	b := t.Boundary()
	center := geom.Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
	nearest := t.FindNearest(center, 5)
	fmt.Printf("%s nearest 5 to center:\n", highlight("knn"))
	for _, e := range nearest {
		fmt.Printf("  (%.2f, %.2f) -> %d\n", e.Point.X, e.Point.Y, e.Value)
	}
}

func runHotspot(t *quadtree.Tree[int]) {
	rect, count := t.FindHotspot(4)
	fmt.Printf("%s rect=%+v count=%s\n", highlight("hotspot"), rect, humanize.Comma(int64(count)))
}

func runMoran(t *quadtree.Tree[int], cfg config.Config) {
	value := func(v int) (float64, bool) { return float64(v), true }
	i := t.SpatialAutocorrelation(value, cfg.MoranThreshold)
	fmt.Printf("%s I=%.4f\n", highlight("moran"), i)
}

func runDBSCAN(t *quadtree.Tree[int], cfg config.Config) {
	clusters := t.DBSCANCluster(cfg.DBSCANEps, cfg.DBSCANMinPts)
	fmt.Printf("%s found %s clusters\n", highlight("dbscan"), humanize.Comma(int64(len(clusters))))
	for i, c := range clusters {
		fmt.Printf("  cluster %d: %s points\n", i, humanize.Comma(int64(len(c))))
	}
}

// runFilter compiles every entry of cfg.Filters into a scripting.Predicate
// and folds them into a single quadtree.Filter call: an entry survives only
// if every configured expression evaluates true for it (SPEC_FULL.md §4.9).
// A config with no filters configured is reported rather than silently
// treated as a no-op, since that usually means the TOML document's
// [[filters]] table was left out by mistake.
func runFilter(t *quadtree.Tree[int], cfg config.Config) {
	if len(cfg.Filters) == 0 {
		fmt.Printf("%s no filters configured, nothing to do\n", highlight("filter"))
		return
	}

	predicates := make([]scripting.Predicate[int], 0, len(cfg.Filters))
	for _, nf := range cfg.Filters {
		pred, err := scripting.CompilePredicate[int](nf.Expr)
		if err != nil {
			fatal(fmt.Errorf("filter %q: %w", nf.Name, err))
		}
		predicates = append(predicates, pred)
	}

	combined := func(p geom.Point, v int) bool {
		for _, pred := range predicates {
			if !pred(p, v) {
				return false
			}
		}
		return true
	}

	out, err := quadtree.Filter(t, combined, t.Capacity())
	if err != nil {
		fatal(err)
	}
	names := make([]string, len(cfg.Filters))
	for i, nf := range cfg.Filters {
		names[i] = nf.Name
	}
	fmt.Printf("%s applied [%s]: %s of %s entries kept\n", highlight("filter"),
		fmt.Sprint(names), humanize.Comma(int64(out.Count())), humanize.Comma(int64(t.Count())))
}

func runRender(t *quadtree.Tree[int]) {
	nodes := t.DebugNodes()
	img := render.Boundaries(t.Boundary(), nodes, 512, 512)

	out := os.Getenv("QTREEDEMO_RENDER_OUT")
	if out == "" {
		out = "qtreedemo-boundaries.png"
	}
	f, err := os.Create(out)
	if err != nil {
		fatal(err)
	}
	defer f.Close()
	if err := render.EncodePNG(f, img); err != nil {
		fatal(err)
	}
	fmt.Printf("%s wrote %s (%s nodes)\n", highlight("render"), out, humanize.Comma(int64(len(nodes))))
}

func runSerialize(t *quadtree.Tree[int]) {
	serialized := quadtree.Serialize(t)
	snap, err := snapshot.New(serialized)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%s id=%s hash=%s bytes=%s\n", highlight("serialize"), snap.ID, snap.Hash,
		humanize.Bytes(uint64(len(serialized))))
}
