package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter phrases artifact entry descriptions in one locale. It satisfies
// the chronicle's entry formatter collaborator.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a formatter for the given locale.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

// FormatArtifactEvent phrases the found or missed description for the named
// artifact.
func (f Formatter) FormatArtifactEvent(name string, found bool) string {
	if found {
		return f.printer.Sprintf(ArtifactFoundKey, name)
	}
	return f.printer.Sprintf(ArtifactMissedKey, name)
}
