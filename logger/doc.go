// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, level configuration from the
// environment, and component-scoped loggers with structured fields.
//
//	log := logger.NewDefault("vllm")
//	log.Info("request sent", logger.Fields("request_id", id))
package logger
