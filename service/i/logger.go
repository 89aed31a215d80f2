package i

// Logger defines levelled logging.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
