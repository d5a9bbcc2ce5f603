package shared

import "strings"

// JoinURL joins base and path with exactly one slash between them.
func JoinURL(base string, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
