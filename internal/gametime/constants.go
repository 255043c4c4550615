package gametime

import "errors"

// ErrInvalidFrequency is returned for unparseable frequency strings
var ErrInvalidFrequency = errors.New("invalid recatch frequency")

// Error Messages
const (
	ErrMsgInvalidFrequencyFormat = "%w %q: expected never, daily, weekly, seasonal, yearly or every:N"
)
