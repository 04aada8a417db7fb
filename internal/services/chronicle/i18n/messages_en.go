package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, ArtifactFoundKey, "Found %s")
	message.SetString(lang, ArtifactMissedKey, "Missed %s")
}
