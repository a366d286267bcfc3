package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "pt-BR"

const (
	keyCategoryLine   = "report.category_line"
	keyNoTerms        = "report.no_terms"
	keyLoadTime       = "report.load_time"
	keyAnalyzeTime    = "report.analyze_time"
	keyHeaderCategory = "report.header.category"
	keyHeaderMatches  = "report.header.matches"
)

var (
	supportedLocales = []language.Tag{language.BrazilianPortuguese, language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)
	messages         = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))

	set := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(fmt.Sprintf("register message %s/%s: %v", tag, key, err))
		}
	}

	pt := language.BrazilianPortuguese
	set(pt, keyCategoryLine, plural.Selectf(2, "%d",
		"=1", "%[1]s = %[2]d ( %[2]d %[1]s foi mencionado(o) )",
		"other", "%[1]s = %[2]d ( %[2]d %[1]s foram mencionados(as) )",
	))
	set(pt, keyNoTerms, catalog.String("Na frase não existe nenhum filho do nível %[1]d e nem o nível %[1]d possui os termos especificados."))
	set(pt, keyLoadTime, catalog.String("Tempo de carregamento dos parâmetros: %dms"))
	set(pt, keyAnalyzeTime, catalog.String("Tempo de verificação da frase: %dms"))
	set(pt, keyHeaderCategory, catalog.String("Categoria"))
	set(pt, keyHeaderMatches, catalog.String("Menções"))

	en := language.English
	set(en, keyCategoryLine, plural.Selectf(2, "%d",
		"=1", "%[1]s = %[2]d ( %[2]d %[1]s was mentioned )",
		"other", "%[1]s = %[2]d ( %[2]d %[1]s were mentioned )",
	))
	set(en, keyNoTerms, catalog.String("The phrase has no children of level %[1]d and level %[1]d itself does not contain the specified terms."))
	set(en, keyLoadTime, catalog.String("Taxonomy load time: %dms"))
	set(en, keyAnalyzeTime, catalog.String("Phrase analysis time: %dms"))
	set(en, keyHeaderCategory, catalog.String("Category"))
	set(en, keyHeaderMatches, catalog.String("Matches"))

	return b
}

// MatchLocale resolves a BCP 47 tag to the closest supported locale.
// Unsupported languages fall back to Brazilian Portuguese.
func MatchLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, index, _ := localeMatcher.Match(tag)
	return supportedLocales[index], nil
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}
