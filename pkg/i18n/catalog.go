package i18n

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/otb/utility/pkg/logger"
	"github.com/otb/utility/pkg/validator"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

//go:embed locales/validation.yaml
var defaultCatalogYAML []byte

// %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Catalog holds validation message templates per language. It is read-only
// after construction and safe for concurrent use.
type Catalog struct {
	messages    map[string]map[string]string
	langs       []string
	matcher     language.Matcher
	defaultLang string
	logger      *slog.Logger
}

// NewCatalog parses YAML content of the form
//
//	en:
//	  validation:
//	    email: "%{field} must be a valid email address"
//
// Keys are flattened with dots ("validation.email"). Language keys must be
// BCP 47 tags.
func NewCatalog(ctx context.Context, content []byte, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	messages, langs, tags, err := c.load(ctx, content)
	if err != nil {
		c.logger.ErrorContext(ctx, "validation catalog rejected", logger.Error(err))
		return nil, err
	}

	c.messages = messages
	c.langs = langs
	c.matcher = language.NewMatcher(tags)
	c.logger.DebugContext(ctx, "validation catalog loaded", slog.Any("languages", langs))
	return c, nil
}

// load parses content and orders the languages for the matcher.
func (c *Catalog) load(ctx context.Context, content []byte) (map[string]map[string]string, []string, []language.Tag, error) {
	messages, err := parseYAML(ctx, content)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(messages) == 0 {
		return nil, nil, nil, ErrEmptyCatalog
	}
	if _, ok := messages[c.defaultLang]; !ok {
		return nil, nil, nil, errors.Join(ErrUnknownDefaultLanguage, fmt.Errorf("language %q", c.defaultLang))
	}

	// The default language goes first: the matcher falls back to index 0.
	langs := make([]string, 0, len(messages))
	for lang := range messages {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	langs = slices.Insert(langs, 0, c.defaultLang)

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, nil, nil, errors.Join(ErrFailedToParseYAML, fmt.Errorf("language %q: %w", lang, err))
		}
		tags[i] = tag
	}
	return messages, langs, tags, nil
}

// MustNewCatalog is NewCatalog that panics on error.
func MustNewCatalog(ctx context.Context, content []byte, opts ...Option) *Catalog {
	c, err := NewCatalog(ctx, content, opts...)
	if err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
	return c
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return MustNewCatalog(context.Background(), defaultCatalogYAML)
})

// Default returns the built-in catalog with English and German messages for
// every key produced by package validator.
func Default() *Catalog {
	return defaultCatalog()
}

// Languages lists the catalog languages, default language first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

// Match resolves lang to a catalog language. lang may be a single tag
// ("de-AT") or an Accept-Language header value ("fr;q=0.9, de;q=0.8").
// Unknown or empty input resolves to the default language.
func (c *Catalog) Match(lang string) string {
	if lang == "" {
		return c.defaultLang
	}
	if _, ok := c.messages[lang]; ok {
		return lang
	}
	_, idx := language.MatchStrings(c.matcher, lang)
	if idx < 0 || idx >= len(c.langs) {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Translate renders key for lang, substituting %{name} placeholders from
// values. Missing keys fall back to the default language and then to the
// key itself.
func (c *Catalog) Translate(lang, key string, values map[string]any) string {
	resolved := c.Match(lang)
	tmpl, ok := c.messages[resolved][key]
	if !ok && resolved != c.defaultLang {
		tmpl, ok = c.messages[c.defaultLang][key]
	}
	if !ok {
		c.logger.Warn("translation not found",
			logger.Group("translation", slog.String("lang", resolved), slog.String("key", key)))
		return key
	}
	return interpolate(tmpl, values)
}

// Localize renders every error in verrs, grouped by field. Errors without a
// TranslationKey keep their Message.
func (c *Catalog) Localize(lang string, verrs validator.ValidationErrors) map[string][]string {
	if len(verrs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(verrs))
	for _, e := range verrs {
		msg := e.Message
		if e.TranslationKey != "" {
			msg = c.Translate(lang, e.TranslationKey, e.TranslationValues)
		}
		out[e.Field] = append(out[e.Field], msg)
	}
	return out
}

func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}
