package conffile

import "sort"

// Render serializes the state into display lines in ascending line order.
// The returned order is the file's persisted line order.
func Render(state FileState) []string {
	type entry struct {
		el   Element
		line int
	}
	entries := make([]entry, 0, len(state))
	for el, line := range state {
		entries = append(entries, entry{el, line})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].line < entries[j].line })

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.el.Render()
	}
	return lines
}
