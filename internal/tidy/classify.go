package tidy

import "strings"

const (
	screenshotPrefix = "Screenshot "
	screenshotSuffix = ".png"
)

// IsScreenshot reports whether name matches the macOS screenshot naming
// pattern: the literal prefix "Screenshot " and the suffix ".png",
// case-sensitive. The check is on the name only, never on content.
// Directories are excluded by the caller.
func IsScreenshot(name string) bool {
	return strings.HasPrefix(name, screenshotPrefix) && strings.HasSuffix(name, screenshotSuffix)
}

// IsHidden reports whether name is a dotfile. Hidden downloads entries
// are invisible to the engine: they appear in no listing, no byte total
// and no deletion plan.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
