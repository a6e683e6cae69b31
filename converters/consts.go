package converters

const (
	ErrMsgEmptyString    = "Parameter cannot be empty."
	ErrMsgBadTimeFormat  = "Bad time format, expected HH:MM or HHMM"
	ErrMsgBadDateFormat  = "Bad date format, expected YYYYMMDD or YYYY-MM-DD"
	ErrMsgBadFrequency   = "Bad frequency, expected MHz such as 14.320"
	ErrMsgNotIntegral    = "Parameter is not an integral number."
	ErrMsgBadDecimalText = "Bad decimal, expected a base-10 number"
	ErrMsgOutOfRange     = "Parameter does not fit in an int64."
)
