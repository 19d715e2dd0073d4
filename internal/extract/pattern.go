package extract

import "regexp"

// patternSource is the fixed email grammar. The character classes are
// lowercase only; mixed-case addresses such as User@Example.COM are not
// matched. A backtick lives inside the local-part class, hence the
// concatenation.
const patternSource = `(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*` +
	`|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")` +
	`@` +
	`(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?` +
	`|\[(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?` +
	`|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])`

// Pattern is the compiled email grammar. It is not configurable.
var Pattern = regexp.MustCompile(patternSource)

var fullPattern = regexp.MustCompile(`^(?:` + patternSource + `)$`)

// MatchLine returns every non-overlapping match in line, left to right.
// Only whole matches are returned, never capture groups.
func MatchLine(line string) []string {
	return Pattern.FindAllString(line, -1)
}

// IsAddress reports whether s as a whole is a string the grammar matches.
func IsAddress(s string) bool {
	return fullPattern.MatchString(s)
}
