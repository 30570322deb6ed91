package validator

import (
	"errors"
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// Struct tag names registered by RegisterTags. Built-in go-playground tags
// such as "email" and "url" keep their own semantics.
const (
	TagEmail         = "email_basic"
	TagPassword      = "strong_password"
	TagName          = "person_name"
	TagMobile        = "mobile"
	TagABN           = "au_abn"
	TagACN           = "au_acn"
	TagURL           = "url_basic"
	TagIndianZipcode = "in_zipcode"
	TagUSAZipcode    = "us_zipcode"
)

// fieldFunc adapts a string predicate to playground.Func. Non-string fields
// fail.
func fieldFunc(pred func(string) bool) playground.Func {
	return func(fl playground.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return false
		}
		return pred(f.String())
	}
}

// RegisterTags registers the package predicates as struct tags on pv. The
// mobile tag uses v's phone checker and length bounds; pass nil to use the
// package defaults.
//
//	type Signup struct {
//	    Email string `validate:"required,email_basic"`
//	    Phone string `validate:"omitempty,mobile"`
//	}
func RegisterTags(pv *playground.Validate, v *Validator) error {
	if v == nil {
		v = defaultValidator
	}
	tags := map[string]func(string) bool{
		TagEmail:         IsEmailValid,
		TagPassword:      IsPasswordValid,
		TagName:          IsNameValid,
		TagMobile:        v.IsMobileNumberValid,
		TagABN:           IsAbnValid,
		TagACN:           IsAcnValid,
		TagURL:           IsURLValid,
		TagIndianZipcode: IsIndianZipcodeValid,
		TagUSAZipcode:    IsUSAZipcodeValid,
	}
	for tag, pred := range tags {
		if err := pv.RegisterValidation(tag, fieldFunc(pred)); err != nil {
			return errors.Join(ErrTagRegistration, fmt.Errorf("tag %q: %w", tag, err))
		}
	}
	return nil
}

// NewStructValidator returns a go-playground validator with RegisterTags
// already applied.
func NewStructValidator(v *Validator) (*playground.Validate, error) {
	pv := playground.New(playground.WithRequiredStructEnabled())
	if err := RegisterTags(pv, v); err != nil {
		return nil, err
	}
	return pv, nil
}
