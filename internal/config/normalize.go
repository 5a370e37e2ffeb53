package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	if err := c.normalizeValidation(); err != nil {
		return err
	}
	return c.normalizeHistory()
}

func (c *Config) normalizeLogging() error {
	if value, ok := lookupEnv("CPLCHECK_LOG_LEVEL"); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv("CPLCHECK_LOG_FORMAT"); ok {
		c.Logging.Format = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := lookupEnv("CPLCHECK_LOG_FILE"); ok {
		c.Logging.File = value
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeValidation() error {
	if value, ok := lookupEnv("CPLCHECK_STRICT_SEQUENCE_KINDS"); ok {
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("CPLCHECK_STRICT_SEQUENCE_KINDS: %w", err)
		}
		c.Validation.StrictSequenceKinds = strict
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if value, ok := lookupEnv("CPLCHECK_HISTORY_DIR"); ok {
		c.History.Dir = value
	}
	c.History.Dir = strings.TrimSpace(c.History.Dir)
	if c.History.Dir == "" {
		c.History.Dir = defaultHistoryDir
	}
	var err error
	if c.History.Dir, err = expandPath(c.History.Dir); err != nil {
		return fmt.Errorf("history.dir: %w", err)
	}
	if c.History.ListLimit == 0 {
		c.History.ListLimit = defaultHistoryListLimit
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}
