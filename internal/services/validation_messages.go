package services

const (
	KeyUserNameBlank                    = "validation.user.name_blank"
	KeyUserEmailBlank                   = "validation.user.email_blank"
	KeyUserEmailInvalid                 = "validation.user.email_invalid"
	KeyUserEmailTaken                   = "validation.user.email_taken"
	KeyUserPasswordBlank                = "validation.user.password_blank"
	KeyUserPasswordTooShort             = "validation.user.password_too_short"
	KeyUserPasswordConfirmationMismatch = "validation.user.password_confirmation_mismatch"

	KeyDojoLocalBlank         = "validation.dojo.local_blank"
	KeyDojoAddressBlank       = "validation.dojo.address_blank"
	KeyDojoCityBlank          = "validation.dojo.city_blank"
	KeyDojoDayBlank           = "validation.dojo.day_blank"
	KeyDojoDayPast            = "validation.dojo.day_past"
	KeyDojoLimitPeopleInvalid = "validation.dojo.limit_people_invalid"
)

// Rendered verbatim by clients; changing a string is a contract change.
var defaultValidationMessages = map[string]string{
	KeyUserNameBlank:                    "Name cannot be blank",
	KeyUserEmailBlank:                   "Email cannot be blank",
	KeyUserEmailInvalid:                 "Email is not valid",
	KeyUserEmailTaken:                   "Email is already in use",
	KeyUserPasswordBlank:                "Password cannot be blank",
	KeyUserPasswordTooShort:             "Password is too short (minimum: 6 characters)",
	KeyUserPasswordConfirmationMismatch: "Password does not match confirmation",

	KeyDojoLocalBlank:         "Venue is required",
	KeyDojoAddressBlank:       "Address is required",
	KeyDojoCityBlank:          "City is required",
	KeyDojoDayBlank:           "Date is required",
	KeyDojoDayPast:            "Past dates are not allowed",
	KeyDojoLimitPeopleInvalid: "People limit must be greater than zero",
}

func validationMessage(key string) string {
	if message, ok := defaultValidationMessages[key]; ok {
		return message
	}
	return key
}
