package boolidx

import (
	"container/heap"
	"math"
	"sort"
)

// skipDistance returns floor(sqrt(n)), the square-root skip used to anchor
// fast-forward jumps in And and AndNot. A skip of 0 (n == 0) disables
// skipping, and a skip of 1 (n < 4) amounts to a plain linear scan.
func skipDistance(n int) int {
	return int(math.Sqrt(float64(n)))
}

// hasSkip reports whether index i is a skip anchor: every skip-th position,
// starting at 0, carries a shortcut to i+skip.
func hasSkip(i, skip int) bool {
	return skip > 0 && i%skip == 0
}

// And merges two ascending, deduplicated posting lists and returns their
// sorted intersection, skip-accelerated on both sides.
func And(p1, p2 []int) []int {
	out := make([]int, 0, minInt(len(p1), len(p2)))
	skip1 := skipDistance(len(p1))
	skip2 := skipDistance(len(p2))

	i, j := 0, 0
	for i < len(p1) && j < len(p2) {
		switch {
		case p1[i] == p2[j]:
			out = append(out, p1[i])
			i++
			j++
		case p1[i] < p2[j]:
			if hasSkip(i, skip1) && i+skip1 < len(p1) && p1[i+skip1] <= p2[j] {
				i += skip1
			} else {
				i++
			}
		default:
			if hasSkip(j, skip2) && j+skip2 < len(p2) && p2[j+skip2] <= p1[i] {
				j += skip2
			} else {
				j++
			}
		}
	}
	return out
}

// AndNot merges two ascending, deduplicated posting lists and returns the
// elements of p1 that do not occur in p2 (p1 \ p2), skip-accelerated on
// the p2 side.
func AndNot(p1, p2 []int) []int {
	out := make([]int, 0, len(p1))
	skip2 := skipDistance(len(p2))

	i, j := 0, 0
	for i < len(p1) && j < len(p2) {
		switch {
		case p1[i] == p2[j]:
			i++
			j++
		case p1[i] < p2[j]:
			out = append(out, p1[i])
			i++
		default:
			if hasSkip(j, skip2) && j+skip2 < len(p2) && p2[j+skip2] <= p1[i] {
				j += skip2
			} else {
				j++
			}
		}
	}
	out = append(out, p1[i:]...)
	return out
}

// Or merges two ascending, deduplicated posting lists and returns their
// sorted union.
func Or(p1, p2 []int) []int {
	out := make([]int, 0, len(p1)+len(p2))
	i, j := 0, 0
	for i < len(p1) && j < len(p2) {
		switch {
		case p1[i] == p2[j]:
			out = append(out, p1[i])
			i++
			j++
		case p1[i] < p2[j]:
			out = append(out, p1[i])
			i++
		default:
			out = append(out, p2[j])
			j++
		}
	}
	out = append(out, p1[i:]...)
	out = append(out, p2[j:]...)
	return out
}

// Not complements p against allDocs, both ascending and deduplicated: it
// returns every DocID present in allDocs but absent from p.
func Not(p, allDocs []int) []int {
	out := make([]int, 0, len(allDocs)-len(p))
	i, j := 0, 0
	for i < len(p) && j < len(allDocs) {
		switch {
		case p[i] == allDocs[j]:
			i++
			j++
		case p[i] < allDocs[j]:
			i++
		default:
			out = append(out, allDocs[j])
			j++
		}
	}
	out = append(out, allDocs[j:]...)
	return out
}

// MultiAnd intersects any number of ascending, deduplicated posting lists.
// Lists are folded from shortest to longest so each And call narrows the
// running intersection as quickly as possible. Returns allDocs-independent
// empty slice on zero inputs and the single input itself (not a copy) on
// one.
func MultiAnd(lists [][]int) []int {
	if len(lists) == 0 {
		return []int{}
	}
	sorted := append([][]int(nil), lists...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) < len(sorted[j]) })

	acc := sorted[0]
	for _, l := range sorted[1:] {
		acc = And(acc, l)
		if len(acc) == 0 {
			break
		}
	}
	return acc
}

// MultiOr unions any number of ascending, deduplicated posting lists using
// a k-way heap merge: each list contributes its current head to a min-heap
// keyed on DocID, the smallest is popped and (deduplicated against the last
// emitted value) appended to the result, and that list's cursor advances.
func MultiOr(lists [][]int) []int {
	h := make(postingHeap, 0, len(lists))
	for src, l := range lists {
		if len(l) > 0 {
			h = append(h, postingCursor{value: l[0], src: src, pos: 0})
		}
	}
	heap.Init(&h)

	out := make([]int, 0)
	haveLast := false
	last := 0
	for h.Len() > 0 {
		top := heap.Pop(&h).(postingCursor)
		if !haveLast || top.value != last {
			out = append(out, top.value)
			last = top.value
			haveLast = true
		}
		if next := top.pos + 1; next < len(lists[top.src]) {
			heap.Push(&h, postingCursor{value: lists[top.src][next], src: top.src, pos: next})
		}
	}
	return out
}

type postingCursor struct {
	value int
	src   int
	pos   int
}

type postingHeap []postingCursor

func (h postingHeap) Len() int            { return len(h) }
func (h postingHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h postingHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *postingHeap) Push(x interface{}) { *h = append(*h, x.(postingCursor)) }
func (h *postingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
