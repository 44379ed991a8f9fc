// Package logger provides the zap logger factory and request-scoped helpers.
package logger
