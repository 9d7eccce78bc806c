package service

import (
	"github.com/go-playground/validator/v10"
)

var formValidator = validator.New()

// LoginForm is the credential pair the login screen submits.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetForm sets a new password from a recovery session. The
// minimum length and the confirmation match are checked before any call.
type PasswordResetForm struct {
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"confirm" validate:"required,eqfield=Password"`
}

// SaccoForm registers a new organization. Name and admin email are the
// only required fields.
type SaccoForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Location string `json:"location"`
	NIN      string `json:"nin"`
}

// MemberForm adds or edits a member of a sacco.
type MemberForm struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	NIN        string `json:"nin"`
	Status     string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	DateJoined string `json:"date_joined"`
}

// TransactionForm records a deposit or withdrawal for a member.
type TransactionForm struct {
	MemberID string `json:"member_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Note     string `json:"note"`
}

// NotificationForm broadcasts a message to all members of a sacco.
type NotificationForm struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// LoanApplicationForm is a member's loan request.
type LoanApplicationForm struct {
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Purpose       string `json:"purpose" validate:"required"`
	RepaymentDate string `json:"repayment_date" validate:"required"`
}

// checkForm validates a form; any failure collapses to ErrMissingFields so
// callers can decline the operation without attempting a write.
func checkForm(form any) error {
	if err := formValidator.Struct(form); err != nil {
		return ErrMissingFields
	}
	return nil
}

// ValidateCredentials keeps the richer validator error so the login and
// reset forms can explain what is wrong.
func ValidateCredentials(form any) error {
	return formValidator.Struct(form)
}
