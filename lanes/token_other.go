//go:build !amd64 && !arm64

package lanes

// Targets without a supported instruction-set tier only carry the portable
// fallback. Generic vectors work everywhere, so nothing else is needed.

// Tokens returns the capability tokens available on this target: only
// Generic.
func Tokens() []Token {
	return []Token{Generic{}}
}

// Detect returns the most capable available token, which is Generic here.
func Detect() Token {
	return Generic{}
}
