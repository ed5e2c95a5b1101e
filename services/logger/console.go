package logsvc

import (
	"log"

	"github.com/mrsmranau/ehomeroom/core"
)

// ConsoleLogger writes entries to a std logger only. Used in DEV and TEST.
type ConsoleLogger struct {
	std   *log.Logger
	debug bool
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(std *log.Logger, debug bool) *ConsoleLogger {
	return &ConsoleLogger{std: std, debug: debug}
}

// printArgs writes msg then one line per arg; errors print with their stack trace.
func printArgs(std *log.Logger, level, msg string, args []interface{}) {
	std.Printf("[%s] %s", level, msg)
	for _, arg := range args {
		if p, ok := personOf(arg); ok {
			if p.ID > 0 {
				std.Printf("  user: %d (%s, %s)", p.ID, p.Username, p.Role)
			}
			continue
		}
		std.Printf("  %+v", arg)
	}
}

func (l ConsoleLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		printArgs(l.std, "DEBUG", msg, args)
	}
}

func (l ConsoleLogger) Info(msg string, args ...interface{}) {
	printArgs(l.std, "INFO", msg, args)
}

func (l ConsoleLogger) Warn(msg string, args ...interface{}) {
	printArgs(l.std, "WARN", msg, args)
}

func (l ConsoleLogger) Error(msg string, args ...interface{}) {
	printArgs(l.std, "ERROR", msg, args)
}

func (l ConsoleLogger) Fatal(msg string, args ...interface{}) {
	printArgs(l.std, "FATAL", msg, args)
	l.std.Fatal(msg)
}
