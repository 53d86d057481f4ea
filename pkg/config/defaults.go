package config

import "orgdesk/pkg/logger"

const (
	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.TEXT
	DefaultLocale    = "ru"
)
