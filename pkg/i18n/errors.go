package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// ErrEmptyCatalog is returned when the content holds no languages.
	ErrEmptyCatalog = errors.New("catalog has no translations")

	// ErrUnknownDefaultLanguage is returned when the default language has
	// no entry in the catalog.
	ErrUnknownDefaultLanguage = errors.New("default language not present in catalog")
)
