package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	// MessagePermanentWoundHealed takes the cause, character and healed condition labels
	MessagePermanentWoundHealed = "notify.permanent_wound_healed"

	// MessageUnknownCause labels a heal that was not triggered by a condition
	MessageUnknownCause = "notify.unknown_cause"
)

var supportedLocales = []language.Tag{
	language.English,
	language.Spanish,
}

var permanentWoundHealed = message.Key(MessagePermanentWoundHealed, "%[1]s: %[2]s's %[3]s has been healed.")

var (
	matcher  = language.NewMatcher(supportedLocales)
	messages = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	mustSet(b, language.English, MessagePermanentWoundHealed, "%[1]s: %[2]s's %[3]s has been healed.")
	mustSet(b, language.English, MessageUnknownCause, "Regeneration")

	mustSet(b, language.Spanish, MessagePermanentWoundHealed, "%[1]s: %[3]s de %[2]s se ha curado.")
	mustSet(b, language.Spanish, MessageUnknownCause, "Regeneración")

	return b
}

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(err)
	}
}

// MatchLocale returns the supported locale closest to s, English when nothing matches
func MatchLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supportedLocales[index]
}

// NewPrinter returns a printer for tag backed by the notification catalog
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
