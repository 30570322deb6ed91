package i18n

import "log/slog"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a request matches none of
// the catalog languages. Defaults to DefaultLanguage.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger receives construction failures and a warning for every key
// missing from the catalog.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}
