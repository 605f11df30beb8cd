package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"todoai/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `rateLimitExceeded = "Too many requests"`)
	writeFile(t, dir, "fr.toml", `rateLimitExceeded = "Trop de requêtes"`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr).Localize(&i18n.LocalizeConfig{
		MessageID: "rateLimitExceeded",
	})
	require.NoError(t, err)
	require.Equal(t, "Trop de requêtes", msg)
}

func TestInitTranslator_SkipsUnsupportedLanguagesAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `hello = "Hello"`)
	writeFile(t, dir, "de.toml", `hello = "Hallo"`)
	writeFile(t, dir, "README.md", `not a translation`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn},
	})

	msg, err := i18n.NewLocalizer(translator.Translator, "de").Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Hello", msg)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	require.NotNil(t, translator.Translator)
}

func TestInitTranslator_ShippedTranslationsAreComplete(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for _, lang := range []string{translator.LanguageEn, translator.LanguageFr} {
		localizer := i18n.NewLocalizer(translator.Translator, lang)
		for _, id := range []string{"aiNotConfigured", "aiTimeout", "aiUnexpectedFormat", "rateLimitExceeded", "goalTooShort"} {
			_, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
			require.NoError(t, err, "lang=%s id=%s", lang, id)
		}
	}
}
