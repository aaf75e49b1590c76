package scaffold

import "strings"

// MergeManifest ensures every candidate line is present in a manifest.
//
// Presence is exact full-line equality against the current text split into
// lines, so "export * from './user';" is not mistaken for present when only
// "export * from './user-role';" exists. Missing lines are appended in
// candidate order; existing content is never reordered or rewritten. The
// returned slice lists the lines that were appended.
func MergeManifest(current string, candidates []string) (string, []string) {
	present := make(map[string]bool)
	for _, line := range strings.Split(current, "\n") {
		present[strings.TrimSuffix(line, "\r")] = true
	}

	var b strings.Builder
	b.WriteString(current)

	var added []string
	for _, line := range candidates {
		if line == "" || present[line] {
			continue
		}
		if len(added) == 0 && current != "" && !strings.HasSuffix(current, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(line)
		b.WriteString("\n")
		present[line] = true
		added = append(added, line)
	}

	return b.String(), added
}

// GroupManifestEntries groups entries by manifest path, keeping the order in
// which each manifest and each line was first seen.
func GroupManifestEntries(entries []ManifestEntry) ([]string, map[string][]string) {
	var order []string
	lines := make(map[string][]string)
	for _, e := range entries {
		if _, ok := lines[e.Manifest]; !ok {
			order = append(order, e.Manifest)
		}
		lines[e.Manifest] = append(lines[e.Manifest], e.Line)
	}
	return order, lines
}
