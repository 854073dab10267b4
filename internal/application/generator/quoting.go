package generator

import (
	"strings"

	"github.com/diillson/mawsh-go/internal/shared/types"
)

// Quoter turns an untrusted value into the text embedded in the script.
type Quoter func(string) string

// Verbatim embeds the value as is. Shell metacharacters in it are not neutralized.
func Verbatim(s string) string {
	return s
}

// ShellQuote wraps the value in single quotes, escaping embedded single quotes.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoterFor maps a quoting mode from the settings to its Quoter.
func QuoterFor(mode string) Quoter {
	if mode == types.QuotingShell {
		return ShellQuote
	}
	return Verbatim
}
