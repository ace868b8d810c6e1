package service

import "errors"

// ErrNotFound is returned when an operation targets a record that does not
// exist (unknown punishment or appeal id).
var ErrNotFound = errors.New("record not found")

// ErrNotOwner is returned when a user tries to act on another user's record.
var ErrNotOwner = errors.New("record belongs to another user")

// ValidationError carries the user-facing message for rejected input. It is
// returned before any write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// User-facing messages, kept in the site's language.
const (
	msgEmailRequired    = "이메일을 입력하세요."
	msgReasonTooShort   = "사유를 5글자 이상 입력하세요."
	msgInvalidCounts    = "처벌 횟수가 올바르지 않습니다."
	msgNothingToApply   = "적용할 처벌이 없습니다."
	msgAppealTooShort   = "이의제기 내용을 5글자 이상 입력하세요."
	msgInvalidStatus    = "처리 상태가 올바르지 않습니다."
	msgMessageRequired  = "알림 내용을 입력하세요."
	defaultBanReason    = "관리자에 의해 차단되었습니다."
	defaultBanLogReason = "관리자에 의해 처리되었습니다."
	unbanReason         = "관리자가 해제"
	warningAccumSuffix  = " (경고 누적)"
	permanentLabel      = "영구"
)
