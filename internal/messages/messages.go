// Package messages renders the drill's user-facing text through
// golang.org/x/text catalogs built from the embedded locale files.
package messages

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/robalobadob/passtrain/assets"
)

// Catalog keys.
const (
	KeyTitle        = "title"
	KeySecretPrompt = "secret.prompt"
	KeyEmptySecret  = "secret.empty"
	KeyBadSecret    = "secret.invalid"
	KeyStatus       = "round.status" // difficulty, length, attempts
	KeyGuessPrompt  = "round.guess"  // obscured hint
	KeyContinue     = "round.continue"
	KeySuccess      = "result.success"
	KeyComplete     = "result.complete"
	KeyRaised       = "result.raised"
	KeyIncorrect    = "result.incorrect" // the guess
	KeyLowered      = "result.lowered"
	KeySummary      = "session.summary" // rounds, correct, peak, length
	KeyGoodbye      = "session.goodbye"
)

// BaseLocale is used for unknown locales and missing keys.
var BaseLocale = language.AmericanEnglish

// Printer formats catalog messages for one locale.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// Load builds the catalog from every embedded locale file and returns a
// printer for the available locale closest to locale.
func Load(locale string) (*Printer, error) {
	tags, err := availableTags()
	if err != nil {
		return nil, err
	}
	b := catalog.NewBuilder(catalog.Fallback(BaseLocale))
	for _, tag := range tags {
		entries, err := assets.Catalog(tag.String())
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", tag, err)
		}
		for key, value := range entries {
			if err := b.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
	}
	tag := match(locale, tags)
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(b))}, nil
}

// availableTags lists the embedded locales with BaseLocale first, so it is
// the matcher's default.
func availableTags() ([]language.Tag, error) {
	names, err := assets.Locales()
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	tags := []language.Tag{BaseLocale}
	found := false
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", name, err)
		}
		if tag == BaseLocale {
			found = true
			continue
		}
		tags = append(tags, tag)
	}
	if !found {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return tags, nil
}

// match maps a locale string such as "pt_BR.UTF-8" to one of tags.
// tags[0] is returned when nothing matches.
func match(locale string, tags []language.Tag) language.Tag {
	locale, _, _ = strings.Cut(strings.TrimSpace(locale), ".")
	if locale == "" {
		return tags[0]
	}
	want, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return tags[0]
	}
	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return tags[0]
	}
	return tags[idx]
}

// Tag returns the locale the printer resolved to.
func (p *Printer) Tag() language.Tag { return p.tag }

// Sprintf formats the message registered under key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
