// Package nls resolves stable message ids to localized user-facing text.
// Error prose must never be hardcoded at the failure site in a single
// locale; adding a language means registering another catalog here.
package nls

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message ids. Each id doubles as the catalog key for
// golang.org/x/text/message; the substitution arguments listed per id are
// positional and mandatory.
const (
	// ConsoleTitle takes no arguments.
	ConsoleTitle = "console.title"
	// NotImplemented takes the GOOS identifier.
	NotImplemented = "console.not.implemented"
	// ProgramNotFound takes the missing program path.
	ProgramNotFound = "program.not.found"
	// ProgramFailed takes the program path and its exit code.
	ProgramFailed = "program.failed"
	// PressAnyKey takes no arguments.
	PressAnyKey = "press.any.key"
)

var defaultLang = language.AmericanEnglish

func init() {
	for id, text := range map[string]string{
		ConsoleTitle:    "Debug Console",
		NotImplemented:  "External console is not implemented on %s.",
		ProgramNotFound: "'%s' not found on disk",
		ProgramFailed:   "'%s' failed with exit code %d",
		PressAnyKey:     "Press any key to continue...",
	} {
		if err := message.SetString(defaultLang, id, text); err != nil {
			panic(err)
		}
	}
}

var printer = message.NewPrinter(defaultLang)

// Localize renders the message identified by id with the given positional
// substitution arguments.
func Localize(id string, args ...any) string {
	return printer.Sprintf(id, args...)
}
