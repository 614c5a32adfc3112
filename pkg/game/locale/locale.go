// Package locale installs the translated UI strings for gotext.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Default is used when no locale is configured
const Default = "en"

// ErrUnknownLocale is returned for a language with no embedded catalog
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed po/*.po
var catalogs embed.FS

// Languages lists the embedded languages
func Languages() []string {
	entries, err := catalogs.ReadDir("po")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// normalize turns "de_DE.UTF-8" and friends into "de"
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" || lang == "posix" {
		return Default
	}
	return lang
}

// Init makes lang the active gotext catalog
func Init(lang string) error {
	lang = normalize(lang)

	data, err := catalogs.ReadFile("po/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator("default", po)
	gotext.SetStorage(l)
	return nil
}
