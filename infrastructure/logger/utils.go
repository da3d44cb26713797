package logger

import (
	"io"
	"time"
)

// LogAndMeasureExecutionTime logs the start of functionName and returns a
// function that logs its end together with the elapsed time.
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser wraps w so it can be passed to Backend.AddLogWriter without
// being closed by Backend.Close. Use it for os.Stdout and os.Stderr.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
