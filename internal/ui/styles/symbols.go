package styles

// Symbols holds the status symbol set.
type Symbols struct {
	OK      string
	Warning string
	Missing string
	Arrow   string
}

var defaultSymbols = Symbols{
	OK:      "✓",
	Warning: "⚠",
	Missing: "✕",
	Arrow:   "→",
}

// ASCII-safe symbols for --plain and non-terminal output
var plainSymbols = Symbols{
	OK:      "ok",
	Warning: "!",
	Missing: "x",
	Arrow:   "->",
}

// plain tracks whether colors and unicode symbols are disabled
var plain bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetPlain disables (or re-enables) colors and unicode symbols.
func SetPlain(enabled bool) {
	plain = enabled
	if enabled {
		currentSymbols = plainSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// Plain returns whether plain mode is enabled.
func Plain() bool {
	return plain
}

// CurrentSymbols returns the current symbol set.
func CurrentSymbols() Symbols {
	return currentSymbols
}

// OK returns the success symbol, colored unless plain mode is on.
func OK() string {
	if plain {
		return currentSymbols.OK
	}
	return SuccessStyle.Render(currentSymbols.OK)
}

// Warn returns the warning symbol.
func Warn() string {
	if plain {
		return currentSymbols.Warning
	}
	return WarningStyle.Render(currentSymbols.Warning)
}

// Missing returns the missing/failure symbol.
func Missing() string {
	if plain {
		return currentSymbols.Missing
	}
	return ErrorStyle.Render(currentSymbols.Missing)
}

// Arrow returns the move-arrow symbol.
func Arrow() string {
	if plain {
		return currentSymbols.Arrow
	}
	return MutedStyle.Render(currentSymbols.Arrow)
}

// MutedText renders s in the muted color, or unstyled in plain mode.
func MutedText(s string) string {
	if plain {
		return s
	}
	return MutedStyle.Render(s)
}
