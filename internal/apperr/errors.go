package apperr

// Signup.

func NewErrContactTaken() *Error {
	return New(KindSignupRestricted, "SGR-001", "This contact number is already registered! Try other contact number.")
}

func NewErrInvalidEmail() *Error {
	return New(KindValidationFailed, "SGR-002", "Invalid email-id format!")
}

func NewErrInvalidContactNumber() *Error {
	return New(KindValidationFailed, "SGR-003", "Invalid contact number!")
}

func NewErrSignupWeakPassword() *Error {
	return New(KindWeakPassword, "SGR-004", "Weak password!")
}

func NewErrSignupFieldsMissing() *Error {
	return New(KindValidationFailed, "SGR-005", "Except last name all fields should be filled")
}

// Login.

func NewErrContactNotRegistered() *Error {
	return New(KindAuthenticationFailed, "AUTH-001", "This contact number has not been registered!")
}

func NewErrInvalidCredentials() *Error {
	return New(KindAuthenticationFailed, "AUTH-002", "Invalid Credentials")
}

func NewErrMalformedBasicAuth() *Error {
	return New(KindAuthenticationFailed, "ATH-003", "Incorrect format of decoded customer name and password")
}

// Session authorization.

func NewErrNotLoggedIn() *Error {
	return New(KindNotLoggedIn, "AUTH-001", "Customer is not Logged in.")
}

func NewErrLoggedOut() *Error {
	return New(KindLoggedOut, "AUTH-002", "Customer is logged out. Log in again to access this endpoint.")
}

func NewErrSessionExpired() *Error {
	return New(KindSessionExpired, "AUTH-003", "Your session is expired. Log in again to access this endpoint.")
}

// Password change.

func NewErrWeakPassword() *Error {
	return New(KindWeakPassword, "UCR-001", "Weak password!")
}

func NewErrEmptyPasswordField() *Error {
	return New(KindEmptyField, "UCR-003", "No field should be empty")
}

func NewErrIncorrectOldPassword() *Error {
	return New(KindIncorrectOldPassword, "UCR-004", "Incorrect old password!")
}

// Addresses.

func NewErrAddressFieldsEmpty() *Error {
	return New(KindEmptyField, "SAR-001", "No field can be empty")
}

func NewErrInvalidPincode() *Error {
	return New(KindValidationFailed, "SAR-002", "Invalid pincode")
}

func NewErrStateNotFound() *Error {
	return New(KindNotFound, "ANF-002", "No state by this id")
}

func NewErrAddressNotFound() *Error {
	return New(KindNotFound, "ANF-003", "No address by this id")
}

func NewErrAddressIDEmpty() *Error {
	return New(KindEmptyField, "ANF-005", "Address id can not be empty")
}

func NewErrAddressForbidden() *Error {
	return New(KindForbidden, "ATHR-004", "You are not authorized to view/update/delete any one else's address")
}

// Catalog.

func NewErrCategoryIDEmpty() *Error {
	return New(KindEmptyField, "CNF-001", "Category id field should not be empty")
}

func NewErrCategoryNotFound() *Error {
	return New(KindNotFound, "CNF-002", "No category by this id")
}

func NewErrBrandNotFound() *Error {
	return New(KindNotFound, "RNF-001", "No brand by this id")
}

func NewErrBrandIDEmpty() *Error {
	return New(KindEmptyField, "RNF-002", "Brand id field should not be empty")
}

func NewErrBrandNameEmpty() *Error {
	return New(KindEmptyField, "RNF-003", "Brand name field should not be empty")
}

// Avatars.

func NewErrAvatarNotFound() *Error {
	return New(KindNotFound, "AVR-001", "No avatar uploaded")
}

func NewErrAvatarEmpty() *Error {
	return New(KindEmptyField, "AVR-002", "Avatar body should not be empty")
}
