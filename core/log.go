package core


import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)


type LogLevel uint8


const (
	LOG_SILENT LogLevel = 0
	LOG_FATAL  LogLevel = 1
	LOG_ERROR  LogLevel = 2
	LOG_WARN   LogLevel = 3
	LOG_INFO   LogLevel = 4
	LOG_DEBUG  LogLevel = 5
	LOG_TRACE  LogLevel = 6
)


type Logger interface {
	// Log a message with a printf format for different log levels.
	//
	Fatalf(string, ...interface{})
	Errorf(string, ...interface{})
	Warnf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Tracef(string, ...interface{})

	// Return a new logger with the given `name` appended to this logger
	// current name.
	//
	Extend(string) Logger
}


var globalLogger Logger = &noLogger{}


func SetLogger(logger Logger) {
	globalLogger = logger
}

func ExtendLogger(name string) Logger {
	return globalLogger.Extend(name)
}


type noLogger struct {
}

func NewNoLogger() Logger {
	return &noLogger{}
}

func (this *noLogger) Fatalf(string, ...interface{}) {}
func (this *noLogger) Errorf(string, ...interface{}) {}
func (this *noLogger) Warnf(string, ...interface{}) {}
func (this *noLogger) Infof(string, ...interface{}) {}
func (this *noLogger) Debugf(string, ...interface{}) {}
func (this *noLogger) Tracef(string, ...interface{}) {}
func (this *noLogger) Extend(string) Logger { return this }


// A logger writing through zap.
// Zap has no trace level so trace messages are emitted at debug level when
// the configured level allows it.
//
type zapLogger struct {
	inner  *zap.SugaredLogger
	level  LogLevel
}

func NewZapLogger(inner *zap.Logger, level LogLevel) Logger {
	return &zapLogger{
		inner: inner.Sugar(),
		level: level,
	}
}

// Build a development zap logger the same way for every command.
//
func NewDevelopmentLogger(level LogLevel) (Logger, error) {
	var config zap.Config = zap.NewDevelopmentConfig()
	var logger *zap.Logger
	var err error

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.Level = zap.NewAtomicLevelAt(zapLevel(level))

	logger, err = config.Build()
	if err != nil {
		return nil, err
	}

	return NewZapLogger(logger, level), nil
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LOG_SILENT, LOG_FATAL, LOG_ERROR:
		return zapcore.ErrorLevel
	case LOG_WARN:
		return zapcore.WarnLevel
	case LOG_INFO:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func (this *zapLogger) Fatalf(format string, args ...interface{}) {
	if this.level >= LOG_FATAL {
		this.inner.Errorf("FATAL: " + format, args...)
	}
}

func (this *zapLogger) Errorf(format string, args ...interface{}) {
	if this.level >= LOG_ERROR {
		this.inner.Errorf(format, args...)
	}
}

func (this *zapLogger) Warnf(format string, args ...interface{}) {
	if this.level >= LOG_WARN {
		this.inner.Warnf(format, args...)
	}
}

func (this *zapLogger) Infof(format string, args ...interface{}) {
	if this.level >= LOG_INFO {
		this.inner.Infof(format, args...)
	}
}

func (this *zapLogger) Debugf(format string, args ...interface{}) {
	if this.level >= LOG_DEBUG {
		this.inner.Debugf(format, args...)
	}
}

func (this *zapLogger) Tracef(format string, args ...interface{}) {
	if this.level >= LOG_TRACE {
		this.inner.Debugf(format, args...)
	}
}

func (this *zapLogger) Extend(name string) Logger {
	return &zapLogger{
		inner: this.inner.Named(name),
		level: this.level,
	}
}
