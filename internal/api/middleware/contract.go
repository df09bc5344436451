package middleware

import "time"

// HTTPMetrics собирает метрики HTTP запросов (*metrics.Metrics)
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
