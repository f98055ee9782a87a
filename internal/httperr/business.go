package httperr

import "errors"

// BusinessError is a domain failure identified by a stable code, e.g.
// "slot_taken" or "invalid_credentials". Handlers translate codes into
// HTTP status and user-facing text; the code is safe to expose, the
// wrapped cause is not.
type BusinessError struct {
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// WrapBusiness tags an underlying error with a business code, keeping
// the cause reachable through errors.Is.
func WrapBusiness(code string, err error) error {
	return BusinessError{Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
