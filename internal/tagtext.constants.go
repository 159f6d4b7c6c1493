package internal

// Allowed character defaults
const (
	// DefaultAllowedPattern matches the characters permitted in wrap delimiters.
	DefaultAllowedPattern = `[\[\]\(\)<>{}]`
)

// Placeholder scanning
const (
	// PlaceholderPattern matches a {name} placeholder and captures the name.
	PlaceholderPattern = `\{([^{}\s]+)\}`
)

// Common string values
const (
	StringValueEmpty = ""
)
