package logsvc

import (
	"log"
	"strconv"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/user"
)

// RollbarLogger sends entries to Rollbar and mirrors them to a std logger.
// Rollbar is disabled when no token is configured, so DEV keeps console output only.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetEnabled(conf.RollbarToken != "")
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// Close waits for queued items to be sent.
func (l RollbarLogger) Close() {
	rollbar.Close()
}

// personOf recognizes the caller identities accepted in log args.
func personOf(arg interface{}) (user.Profile, bool) {
	switch v := arg.(type) {
	case user.Profile:
		return v, true
	case *user.Profile:
		if v != nil {
			return *v, true
		}
	case user.User:
		return v.Profile(), true
	}
	return user.Profile{}, false
}

// rollbarArgs turns (msg, args) into rollbar's variadic form. The first identity found is
// returned apart; its role and homeroom join the extras map (created when args have none).
// Anonymous callers (ID 0) are not reported as a person.
func rollbarArgs(msg string, args []interface{}) ([]interface{}, *user.Profile) {
	var (
		person *user.Profile
		extras map[string]interface{}
	)
	out := make([]interface{}, 0, len(args)+2)
	out = append(out, msg)
	for _, arg := range args {
		if p, ok := personOf(arg); ok {
			if person == nil && p.ID > 0 {
				person = &p
			}
			continue
		}
		if m, ok := arg.(map[string]interface{}); ok && extras == nil {
			extras = make(map[string]interface{}, len(m)+2)
			for k, v := range m {
				extras[k] = v
			}
			continue
		}
		out = append(out, arg)
	}
	if person != nil {
		if extras == nil {
			extras = make(map[string]interface{}, 2)
		}
		extras["role"] = person.Role
		if person.HomeroomID.Valid {
			extras["homeroom_id"] = person.HomeroomID.Int64
		}
	}
	if extras != nil {
		out = append(out, extras)
	}
	return out, person
}

func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	out, person := rollbarArgs(msg, args)
	if person != nil {
		rollbar.SetPerson(strconv.FormatInt(person.ID, 10), person.Username, "")
	} else {
		rollbar.ClearPerson()
	}
	return out
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	printArgs(l.std, "DEBUG", msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	printArgs(l.std, "INFO", msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	printArgs(l.std, "WARN", msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	printArgs(l.std, "ERROR", msg, args)
}

// Fatal flushes Rollbar before exiting.
func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	printArgs(l.std, "FATAL", msg, args)
	rollbar.Close()
	l.std.Fatal(msg)
}
