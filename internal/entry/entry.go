package entry

import "strings"

// DefaultStrip is removed once from every listed path.
const DefaultStrip = "dist/"

// Normalize turns every backslash into a forward slash, whatever the host
// separator is.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// StripFirst removes the first occurrence of sub anywhere in path. It is not
// anchored: "a/dist/b" loses its inner "dist/" just like a leading one would.
func StripFirst(path, sub string) string {
	if sub == "" {
		return path
	}
	return strings.Replace(path, sub, "", 1)
}

// Quote renders a path as a list literal element: 'path',
func Quote(path string) string {
	return "'" + path + "',"
}

// Format => Normalize, then StripFirst, then Quote
func Format(path, strip string) string {
	return Quote(StripFirst(Normalize(path), strip))
}
