package config

import (
	"github.com/robmorgan/theory/logger"
	"github.com/robmorgan/theory/names"
	"github.com/sirupsen/logrus"
)

// GetTheoryConfig returns the default configuration
func GetTheoryConfig() TheoryConfig {
	val, _ := NewTheoryConfig()
	return val
}

// TheoryConfig represents options that configure the global behavior of the program
type TheoryConfig struct {
	// Project logger
	Logger *logrus.Entry

	// LogLevel is applied to the project logger by Apply
	LogLevel logrus.Level

	// Spelling chooses how pitch class names are printed
	Spelling names.Spelling
}

// Create a new TheoryConfig object with reasonable defaults for real usage
func NewTheoryConfig() (TheoryConfig, error) {
	return TheoryConfig{
		Logger:   logger.GetProjectLogger(),
		LogLevel: logrus.InfoLevel,
		Spelling: names.DefaultSpelling,
	}, nil
}

// Apply pushes the configured log level to the project logger.
func (c TheoryConfig) Apply() {
	logger.SetLevel(c.LogLevel)
}
