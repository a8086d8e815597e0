package hotelbackend

import "time"

type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Metrics учет вызовов бэкенда
type Metrics interface {
	ObserveBackendCall(call, outcome string, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveBackendCall(string, string, time.Duration) {}
