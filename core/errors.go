package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrMissingArguments no json argument given
	ErrMissingArguments ErrorCode = 100001
	// ErrMalformedInput argument is not a valid swap request
	ErrMalformedInput ErrorCode = 100002
)

var errorMessages = map[ErrorCode]string{
	ErrMissingArguments: "Missing arguments",
	ErrMalformedInput:   "Malformed input",
}

// Code numeric code as string
func (e ErrorCode) Code() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) String() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return e.Code()
}

func (e ErrorCode) Error() string {
	return e.String()
}
