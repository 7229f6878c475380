package httperr

import "errors"

// BusinessError é uma rejeição de regra de negócio: local, síncrona e
// não-retryable. O código é estável; a mensagem é para humanos.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// NotFoundError indica que uma entidade referenciada não existe.
type NotFoundError struct {
	Code    string
	Message string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code, message string) error {
	return NotFoundError{Code: code, Message: message}
}

func AsNotFound(err error) (NotFoundError, bool) {
	var ne NotFoundError
	ok := errors.As(err, &ne)
	return ne, ok
}
