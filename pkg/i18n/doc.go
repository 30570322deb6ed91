// Package i18n renders validator.ValidationErrors in the user's language.
//
// A Catalog is built from YAML keyed by language, with nested keys flattened
// by dots and %{name} placeholders filled from
// ValidationError.TranslationValues:
//
//	verrs := validator.ExtractValidationErrors(err)
//	msgs := i18n.Default().Localize(r.Header.Get("Accept-Language"), verrs)
//	// msgs["email"] == []string{"email muss eine gültige E-Mail-Adresse sein"}
//
// Language negotiation uses golang.org/x/text/language, so regional tags
// ("de-AT") and Accept-Language values resolve to the closest catalog
// language. Anything unmatched falls back to the default language, and keys
// missing there fall back to the key itself.
package i18n
