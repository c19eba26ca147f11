package constants

// User roles.
const (
	ROLE_ADMIN    = "admin"
	ROLE_STUDENT  = "student"
	ROLE_HOSTEL   = "hostel"
	ROLE_COACHING = "coaching"
	ROLE_LIBRARY  = "library"
	ROLE_TIFFIN   = "tiffin"
)

// ListerRoles are the roles allowed to own listings.
var ListerRoles = []string{ROLE_HOSTEL, ROLE_COACHING, ROLE_LIBRARY, ROLE_TIFFIN}

// Booking statuses.
const (
	BOOKING_PENDING   = "pending"
	BOOKING_WAITLIST  = "waitlist"
	BOOKING_ACCEPTED  = "accepted"
	BOOKING_REJECTED  = "rejected"
	BOOKING_CANCELLED = "cancelled"
)

// Payment verification statuses.
const (
	PAYMENT_PENDING  = "pending"
	PAYMENT_VERIFIED = "verified"
	PAYMENT_FAKE     = "fake"
)

const (
	MIN_BOOKING_QUANTITY = 1
	MAX_BOOKING_QUANTITY = 5
)

// Response message keys.
const (
	ERROR_INTERNAL_ERROR     = "ERROR_INTERNAL_ERROR"
	INVALID_INPUT            = "INVALID_INPUT"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"

	MISSING_LOGIN_INPUT = "MISSING_LOGIN_INPUT"
	INVALID_EMAIL       = "INVALID_EMAIL"
	INVALID_PASSWORD    = "INVALID_PASSWORD"
	EMAIL_TAKEN         = "EMAIL_TAKEN"
	ACCOUNT_NOT_ACTIVE  = "ACCOUNT_NOT_ACTIVE"
	TOKEN_EXPIRED       = "TOKEN_EXPIRED"
	INVALID_TOKEN       = "INVALID_TOKEN"

	NOT_ADMIN           = "NOT_ADMIN"
	NOT_LISTER          = "NOT_LISTER"
	NOT_AUTHORIZED      = "NOT_AUTHORIZED"
	LISTER_NOT_APPROVED = "LISTER_NOT_APPROVED"

	USER_NOT_FOUND    = "USER_NOT_FOUND"
	LISTING_NOT_FOUND = "LISTING_NOT_FOUND"
	FACULTY_NOT_FOUND = "FACULTY_NOT_FOUND"
	BOOKING_NOT_FOUND = "BOOKING_NOT_FOUND"

	INVALID_BOOKING_STATUS = "INVALID_BOOKING_STATUS"
	INVALID_PAYMENT_STATUS = "INVALID_PAYMENT_STATUS"
	INVALID_QUANTITY       = "INVALID_QUANTITY"
	INVALID_PERIOD         = "INVALID_PERIOD"

	UPLOAD_FAILED      = "UPLOAD_FAILED"
	SETTINGS_NOT_FOUND = "PAYMENT_INFO_NOT_CONFIGURED"
)
