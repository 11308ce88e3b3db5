package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the process-wide JSON logger. LOG_LEVEL=debug
// raises the verbosity when chasing a problem locally.
func SetupLogging() *logrus.Logger {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: level,
	}

	return &logger
}
