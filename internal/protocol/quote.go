package protocol

import "strings"

var argEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// QuoteArg prepares one argument token for an outbound command line.
// Tokens containing whitespace, a double quote or a backslash, and empty
// tokens, are wrapped in double quotes with backslashes and double quotes
// escaped. Other tokens are sent as-is.
func QuoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"\\") {
		return arg
	}
	return `"` + argEscaper.Replace(arg) + `"`
}

// Command builds a command line from a command name and its arguments.
func Command(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(QuoteArg(a))
	}
	return b.String()
}
