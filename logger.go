package sheetpeek

// Logger interface contains the methods needed to properly display log messages.
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
