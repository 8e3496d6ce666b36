package pathutil

import "strings"

// Canonicalize normalizes a remote path: empty and "." segments are dropped,
// ".." removes the previous segment (never climbing above the root), and the
// result is joined without a leading slash. The root is the empty string.
func Canonicalize(path string) string {
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(parts) > 0 {
				parts = parts[:len(parts)-1]
			}
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

// SplitParent splits a remote path into its parent directory and leaf name.
// The leaf is the last non-empty segment; the parent is every segment before
// it, or the empty string if there is none.
func SplitParent(path string) (parent, leaf string) {
	var parts []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	if len(parts) == 0 {
		return "", ""
	}
	return strings.Join(parts[:len(parts)-1], "/"), parts[len(parts)-1]
}

// Resolve canonicalizes arg against the current directory cwd. An arg with a
// leading slash is taken from the root; anything else is relative to cwd.
func Resolve(cwd, arg string) string {
	if strings.HasPrefix(arg, "/") {
		return Canonicalize(arg)
	}
	return Canonicalize(cwd + "/" + arg)
}

// Display renders a canonical remote path the way the shell shows it.
func Display(path string) string {
	return "/" + path
}
