package ports

type LoggerPort interface {
	Debug(msg string)
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}
