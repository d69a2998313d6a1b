package config

import (
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// TranslationDomain is the name of the .po files under <dir>/<lang>/LC_MESSAGES
const TranslationDomain = "default"

// InitTranslations loads the translations of a language. An unknown language falls back
// to en_GB; without any catalog gotext returns the message ids.
func InitTranslations(dir, lang string) string {
	if lang == "" || !hasCatalog(dir, lang) {
		lang = "en_GB"
	}
	gotext.Configure(dir, lang, TranslationDomain)
	return lang
}

func hasCatalog(dir, lang string) bool {
	for _, ext := range []string{".po", ".mo"} {
		if _, err := os.Stat(filepath.Join(dir, lang, "LC_MESSAGES", TranslationDomain+ext)); err == nil {
			return true
		}
	}
	return false
}
