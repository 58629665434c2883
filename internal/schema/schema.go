package schema

// Header is the ordered list of column names of one source file. Names are
// compared by exact value; no trimming or case folding is applied. A header
// read from a file may contain duplicate names.
type Header []string

// compatibilityThreshold is the minimum Jaccard index for two headers to be
// considered part of the same table family.
const compatibilityThreshold = 0.5

// nameSet collapses a header to its set of column names
func nameSet(h Header) map[string]struct{} {
	set := make(map[string]struct{}, len(h))
	for _, name := range h {
		set[name] = struct{}{}
	}
	return set
}

// Jaccard returns the Jaccard index of the two headers' column-name sets:
// intersection size over union size. Column order and duplicate names do not
// affect the result. Two empty headers yield 0.
func Jaccard(a, b Header) float64 {
	setA, setB := nameSet(a), nameSet(b)

	intersection := 0
	for name := range setA {
		if _, ok := setB[name]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Compatible reports whether two headers describe the same table family:
// their column-name sets overlap by at least half of the union. Headers with
// an empty union are never compatible.
func Compatible(a, b Header) bool {
	return Jaccard(a, b) >= compatibilityThreshold
}

// GroupHeaders partitions header indices into compatibility groups.
//
// Indices are processed in input order. Each header is compared against the
// first member (the representative) of every existing group, in group
// creation order, and joins the first group whose representative it is
// compatible with; otherwise it starts a new group. This is deliberately a
// greedy single pass, not transitive clustering: members beyond the second
// are only guaranteed compatible with the representative, not with each
// other.
func GroupHeaders(headers []Header) [][]int {
	var groups [][]int

	for i := range headers {
		placed := false
		for g, group := range groups {
			representative := group[0]
			if Compatible(headers[i], headers[representative]) {
				groups[g] = append(groups[g], i)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []int{i})
		}
	}

	return groups
}

// MergeHeaders produces the unified header of a group: the union of all
// column names, deduplicated, in first-seen order across the headers as
// provided. The result is deterministic for a fixed input order.
func MergeHeaders(headers []Header) Header {
	var merged Header
	seen := make(map[string]struct{})

	for _, header := range headers {
		for _, name := range header {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}

	return merged
}

// RemapRows realigns rows from oldHeader's layout to newHeader's layout.
//
// A lookup from column name to source index is built over oldHeader; when
// oldHeader repeats a name, the last occurrence wins. For every output
// position, the cell is copied from the source row when the column exists
// there and the row is long enough, and is the empty string otherwise. Every
// output row has exactly len(newHeader) cells, whatever shape the source row
// had.
func RemapRows(oldHeader, newHeader Header, rows [][]string) [][]string {
	lookup := make(map[string]int, len(oldHeader))
	for idx, name := range oldHeader {
		lookup[name] = idx
	}

	remapped := make([][]string, 0, len(rows))
	for _, row := range rows {
		out := make([]string, len(newHeader))
		for pos, name := range newHeader {
			if srcIdx, ok := lookup[name]; ok && srcIdx < len(row) {
				out[pos] = row[srcIdx]
			}
		}
		remapped = append(remapped, out)
	}

	return remapped
}
