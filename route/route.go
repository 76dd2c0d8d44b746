// Package route turns a predecessor map produced by a shortest-path run into
// a forward-ordered vertex sequence.
package route

// Reconstruct walks prev backwards from end and returns the path start → end.
//
// Behavior:
//   - end == start yields [start], whether or not prev mentions it.
//   - A chain that never reaches start (end unreachable, or a broken chain)
//     yields an empty, non-nil slice.
//   - The walk is capped at len(prev)+1 steps, so a corrupted map that loops
//     (for example one left behind by a negative cycle) cannot hang the caller.
//
// Complexity: O(L) where L is the path length.
func Reconstruct(prev map[string]string, start, end string) []string {
	if end == start {
		return []string{start}
	}

	path := []string{end}
	cur := end
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		if p == start {
			reverse(path)
			return path
		}
		cur = p
	}

	return []string{}
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
