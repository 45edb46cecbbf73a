package quadtree

import (
	"container/heap"
	"math"
	"sort"

	"github.com/SupremeHuaji/Quadtree/geom"
	"github.com/SupremeHuaji/Quadtree/observability"
	"github.com/esote/minmaxheap"
)

// nodeHeapItem is the outer best-first-search queue element: a candidate
// node keyed by the squared lower-bound distance from the query point to
// its boundary. Shaped after the corpus's own distance-priority-heap
// pattern (dolthub-dolt/go/store/prolly/tree/proximity_map.go).
type nodeHeapItem[V any] struct {
	n    *node[V]
	dist float32
}

type nodeHeap[V any] []nodeHeapItem[V]

func (h nodeHeap[V]) Len() int            { return len(h) }
func (h nodeHeap[V]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap[V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[V]) Push(x interface{}) { *h = append(*h, x.(nodeHeapItem[V])) }
func (h *nodeHeap[V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// knnItem is a bounded top-k element, kept in a min-max heap so the current
// worst candidate can be evicted in O(log k) as better ones are found.
type knnItem[V any] struct {
	entry Entry[V]
	dist  float32
}

type knnHeap[V any] []knnItem[V]

func (h knnHeap[V]) Len() int            { return len(h) }
func (h knnHeap[V]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h knnHeap[V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap[V]) Push(x interface{}) { *h = append(*h, x.(knnItem[V])) }
func (h *knnHeap[V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (h knnHeap[V]) worst() float32 {
	w := float32(0)
	for _, it := range h {
		if it.dist > w {
			w = it.dist
		}
	}
	return w
}

// FindNearest returns up to k entries ordered by ascending Euclidean
// distance from target, via a best-first traversal keyed by each node's
// lower-bound distance to target.
func (t *Tree[V]) FindNearest(target geom.Point, k int) []Entry[V] {
	if k <= 0 {
		return nil
	}

	outer := &nodeHeap[V]{{n: t.root, dist: geom.BoundaryDistanceSquared(t.root.boundary, target)}}
	heap.Init(outer)

	results := &knnHeap[V]{}
	worst := float32(math.MaxFloat32)
	visited := 0

	for outer.Len() > 0 {
		item := heap.Pop(outer).(nodeHeapItem[V])
		if len(*results) >= k && item.dist > worst {
			break
		}
		visited++
		n := item.n
		if n.isLeaf() {
			for _, e := range n.entries {
				d := geom.DistanceSquared(target, e.point)
				minmaxheap.Push(results, knnItem[V]{entry: Entry[V]{Point: e.point, Value: e.value}, dist: d})
				if len(*results) > k {
					minmaxheap.PopMax(results)
				}
				if len(*results) >= k {
					worst = results.worst()
				}
			}
			continue
		}
		for _, c := range n.children {
			d := geom.BoundaryDistanceSquared(c.boundary, target)
			if len(*results) >= k && d > worst {
				continue
			}
			heap.Push(outer, nodeHeapItem[V]{n: c, dist: d})
		}
	}

	t.logger.Debug(observability.MetricKNNNodesVisited, observability.Int("visited", visited))

	out := make([]Entry[V], len(*results))
	order := make(map[geom.Point]int, len(out))
	for i, it := range *results {
		out[i] = it.entry
	}
	for i, e := range t.All() {
		order[e.Point] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		di := geom.DistanceSquared(target, out[i].Point)
		dj := geom.DistanceSquared(target, out[j].Point)
		if di != dj {
			return di < dj
		}
		return order[out[i].Point] < order[out[j].Point]
	})
	return out
}

// FindHotspot returns the (rect, count) pair maximizing entry density
// (count per area) among every node's boundary, subject to count >=
// minCount. Ties are broken by shallower depth (larger area), then
// traversal order. Returns (root boundary, 0) if no node qualifies.
func (t *Tree[V]) FindHotspot(minCount int) (geom.Rect, int) {
	type frame struct {
		n     *node[V]
		depth int
	}

	bestRect := t.root.boundary
	bestCount := 0
	bestDensity := float32(-1)
	bestDepth := 0
	bestSeq := -1
	found := false

	seq := 0
	stack := []frame{{n: t.root, depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seq++

		count := subtreeCount(top.n)
		if count >= minCount {
			density := densityOf(top.n.boundary, count)
			better := !found ||
				density > bestDensity ||
				(density == bestDensity && top.depth < bestDepth) ||
				(density == bestDensity && top.depth == bestDepth && seq < bestSeq)
			if better {
				bestRect = top.n.boundary
				bestCount = count
				bestDensity = density
				bestDepth = top.depth
				bestSeq = seq
				found = true
			}
		}

		if !top.n.isLeaf() {
			d := top.depth + 1
			stack = append(stack,
				frame{n: top.n.children[geom.QuadSE], depth: d},
				frame{n: top.n.children[geom.QuadSW], depth: d},
				frame{n: top.n.children[geom.QuadNE], depth: d},
				frame{n: top.n.children[geom.QuadNW], depth: d},
			)
		}
	}

	if !found {
		return t.root.boundary, 0
	}
	return bestRect, bestCount
}

func densityOf(r geom.Rect, count int) float32 {
	area := r.Area()
	if area <= 0 {
		return float32(count)
	}
	return float32(count) / area
}

type autocorrSample struct {
	p geom.Point
	x float64
}

// SpatialAutocorrelation computes Moran's I over the entries' numeric
// projection (value returns ok=false to exclude an entry). threshold <= 0
// means "use the mean nearest-neighbor distance of the set" as the
// adjacency cutoff. Returns 0 for fewer than 2 qualifying entries or zero
// variance; the result is clamped to [-1, 1] to guard floating-point
// overshoot at the boundary.
func (t *Tree[V]) SpatialAutocorrelation(value func(V) (float64, bool), threshold float32) float64 {
	entries := t.All()
	samples := make([]autocorrSample, 0, len(entries))
	for _, e := range entries {
		if x, ok := value(e.Value); ok {
			samples = append(samples, autocorrSample{p: e.Point, x: x})
		}
	}
	n := len(samples)
	if n < 2 {
		return 0
	}

	mean := 0.0
	for _, s := range samples {
		mean += s.x
	}
	mean /= float64(n)

	variance := 0.0
	for _, s := range samples {
		d := s.x - mean
		variance += d * d
	}
	if variance == 0 {
		return 0
	}

	thresholdSq := float64(threshold) * float64(threshold)
	if threshold <= 0 {
		thresholdSq = t.meanNearestNeighborDistanceSquared(samples)
	}

	numerator := 0.0
	weightSum := 0.0
	for i := range samples {
		for j := range samples {
			if i == j {
				continue
			}
			dSq := float64(geom.DistanceSquared(samples[i].p, samples[j].p))
			if dSq <= thresholdSq {
				weightSum++
				numerator += (samples[i].x - mean) * (samples[j].x - mean)
			}
		}
	}
	if weightSum == 0 {
		return 0
	}

	moranI := (float64(n) / weightSum) * (numerator / variance)
	if moranI > 1 {
		moranI = 1
	}
	if moranI < -1 {
		moranI = -1
	}
	return moranI
}

func (t *Tree[V]) meanNearestNeighborDistanceSquared(samples []autocorrSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		for _, cand := range t.FindNearest(s.p, 2) {
			if cand.Point != s.p {
				sum += float64(geom.Distance(s.p, cand.Point))
				break
			}
		}
	}
	mean := sum / float64(len(samples))
	return mean * mean
}

// DBSCANCluster groups entries into density-based clusters: a point is core
// if QueryCircle(point, eps) yields >= minPts entries; clusters flood-fill
// over reachable core neighborhoods. Points that never become reachable
// from a core point are noise and omitted from the result.
func (t *Tree[V]) DBSCANCluster(eps float32, minPts int) [][]geom.Point {
	entries := t.All()
	visited := make(map[geom.Point]bool, len(entries))
	var clusters [][]geom.Point

	regionQuery := func(p geom.Point) []geom.Point {
		hits := t.QueryCircle(p, eps)
		pts := make([]geom.Point, len(hits))
		for i, h := range hits {
			pts[i] = h.Point
		}
		return pts
	}

	for _, e := range entries {
		p := e.Point
		if visited[p] {
			continue
		}
		visited[p] = true
		neighbors := regionQuery(p)
		if len(neighbors) < minPts {
			continue
		}

		cluster := []geom.Point{p}
		inCluster := map[geom.Point]bool{p: true}
		queue := append([]geom.Point{}, neighbors...)
		for i := 0; i < len(queue); i++ {
			q := queue[i]
			if !visited[q] {
				visited[q] = true
				qNeighbors := regionQuery(q)
				if len(qNeighbors) >= minPts {
					queue = append(queue, qNeighbors...)
				}
			}
			if !inCluster[q] {
				inCluster[q] = true
				cluster = append(cluster, q)
			}
		}
		clusters = append(clusters, cluster)
	}

	t.logger.Debug(observability.MetricDBSCANClusters, observability.Int("clusters", len(clusters)))
	return clusters
}
