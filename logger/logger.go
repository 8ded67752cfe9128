package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const projectName = "theory"

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

// GetProjectLogger returns the shared project logger. It is safe for concurrent use.
func GetProjectLogger() *logrus.Entry {
	once.Do(func() {
		projectLogger = logrus.New()
		projectLogger.SetOutput(os.Stderr)
		projectLogger.SetLevel(logrus.InfoLevel)
	})
	return projectLogger.WithField("name", projectName)
}

// SetLevel changes the level of the project logger
func SetLevel(level logrus.Level) {
	GetProjectLogger().Logger.SetLevel(level)
}
