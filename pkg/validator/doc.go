// Package validator provides stateless format checks for user input: email
// addresses, password strength, personal names, mobile numbers, Australian
// business identifiers (ABN, ACN), URLs and postal codes for India and the
// USA.
//
// Every check comes in two shapes. A predicate such as IsEmailValid takes a
// string and returns a bool; it never panics and treats the empty string as
// invalid. A Rule constructor such as ValidEmail wraps the same predicate
// together with field-level error metadata so several checks can be
// evaluated at once with Apply.
//
// # Predicates
//
//	validator.IsEmailValid("user@example.com")      // true
//	validator.IsPasswordValid("Abcdef1@")           // true
//	validator.IsNameValid("José O'Brien-Smith")     // true
//	validator.IsMobileNumberValid("+61.412-345")    // true
//	validator.IsAbnValid("12345678901")             // true
//	validator.IsAcnValid("123456789")               // true
//	validator.IsURLValid("https://example.com")     // true
//	validator.IsIndianZipcodeValid("560001")        // true
//	validator.IsUSAZipcodeValid("90210-1234")       // true
//
// ABN, ACN and Indian PIN codes are checked by length only. The email and
// phone checks are format heuristics, not full grammars.
//
// # Rules
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidPassword("password", form.Password),
//	    validator.ValidUSAZipcode("zip", form.Zip),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// Each ValidationError carries a TranslationKey ("validation.email", ...)
// and TranslationValues so messages can be localized with package i18n.
//
// # Phone numbers
//
// Mobile numbers must be 7 to 13 characters long and pass a
// PhoneFormatChecker. The default GlobalPhoneChecker accepts an optional
// leading "+" followed by digits, dots and dashes. Hosts with a better
// primitive can inject it:
//
//	v := validator.New(validator.WithPhoneChecker(myChecker))
//	ok := v.IsMobileNumberValid(input)
//
// NewFromEnv reads the bounds and pattern from VALIDATOR_PHONE_MIN_LENGTH,
// VALIDATOR_PHONE_MAX_LENGTH and VALIDATOR_PHONE_PATTERN.
//
// # Struct tags
//
// RegisterTags exposes the predicates to github.com/go-playground/validator
// as the email_basic, strong_password, person_name, mobile, au_abn, au_acn,
// url_basic, in_zipcode and us_zipcode tags.
//
// # Concurrency
//
// The package holds no mutable state. Patterns are compiled once at init and
// a Validator is read-only after New, so everything is safe for concurrent
// use.
package validator
