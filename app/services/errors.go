package services

import "fmt"

type ErrorKind string

const (
	KindNotFound       ErrorKind = "NotFound"
	KindDuplicateEmail ErrorKind = "DuplicateEmail"
	KindInvalidStatus  ErrorKind = "InvalidStatus"
	KindInvalidUpload  ErrorKind = "InvalidUpload"
)

// ServiceError is a request-level failure: bad client input or a missing
// resource, never a transient fault. Kind is machine-readable, Message is
// for humans.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

var (
	ErrMemberNotFound  = &ServiceError{Kind: KindNotFound, Message: "회원을 찾을 수 없습니다."}
	ErrProductNotFound = &ServiceError{Kind: KindNotFound, Message: "상품을 찾을 수 없습니다."}
	ErrVariantNotFound = &ServiceError{Kind: KindNotFound, Message: "상품 옵션을 찾을 수 없습니다."}
	ErrOrderNotFound   = &ServiceError{Kind: KindNotFound, Message: "주문을 찾을 수 없습니다."}
	ErrDuplicateEmail  = &ServiceError{Kind: KindDuplicateEmail, Message: "이미 사용 중인 이메일입니다."}
)

func errInvalidStatus(value string) *ServiceError {
	return &ServiceError{
		Kind:    KindInvalidStatus,
		Message: fmt.Sprintf("유효하지 않은 주문 상태입니다: %s", value),
	}
}

func errInvalidUpload(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidUpload, Message: message}
}
