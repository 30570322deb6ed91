package validator

const (
	// ABNLength is the length of an Australian Business Number.
	ABNLength = 11
	// ACNLength is the length of an Australian Company Number.
	ACNLength = 9
	// IndianZipcodeLength is the length of an Indian PIN code.
	IndianZipcodeLength = 6

	MobileNumberMinLength = 7
	MobileNumberMaxLength = 13

	PasswordMinLength = 8
	// PasswordSpecialChars is the set a password must draw at least one character from.
	PasswordSpecialChars = "@#$%^&+="
)
