package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/neuronlabs/sideload/errors"
)

var (
	// ErrI18n is the major error classification for the i18n package.
	ErrI18n = errors.New("i18n")
	// ErrLanguageParse is the error classification for unparsable language tags.
	ErrLanguageParse = errors.Wrap(ErrI18n, "language parse")
)

// Support defines the internationalization coverage.
type Support struct {
	Matcher language.Matcher
	Locale  language.Coverage
}

// New creates the language support for provided 'languages' tags. The first
// language is the default one, used when no requested language matches.
func New(languages ...string) (*Support, error) {
	var tags []language.Tag
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.WrapDetf(ErrLanguageParse, "parsing language: '%s' failed: %v", lang, err).
				SetDetailsf("Provided unsupported language: '%s'.", lang)
		}
		tags = append(tags, tag)
	}

	s := &Support{Locale: language.NewCoverage(tags)}
	s.Matcher = language.NewMatcher(s.Locale.Tags())
	return s, nil
}

// Match matches the accept languages header value against the supported
// languages. Unparsable headers and unsupported languages match the default
// language.
func (s *Support) Match(acceptLanguages string) language.Tag {
	requested, _, err := language.ParseAcceptLanguage(acceptLanguages)
	if err != nil {
		tag, _, _ := s.Matcher.Match()
		return tag
	}
	tag, _, _ := s.Matcher.Match(requested...)
	return tag
}

// PrettyLanguages return prettified supported languages strings.
func (s *Support) PrettyLanguages() []string {
	namer := display.Tags(language.English)
	names := make([]string, len(s.Locale.Tags()))
	for i, lang := range s.Locale.Tags() {
		names[i] = fmt.Sprintf("%s - '%s'", namer.Name(lang), lang.String())
	}
	return names
}
