package customerr

import "fmt"

type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("date %q does not match dd.mm.yyyy: %v", e.Value, e.Err)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

type UnsupportedCurrencyError struct {
	Code string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("currency %q is not supported", e.Code)
}
