package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "table":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"table\", got %q", c.Output.Format)
	}

	if _, err := language.Parse(c.Output.Locale); err != nil {
		return fmt.Errorf("output.locale %q is not a valid language tag: %w", c.Output.Locale, err)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
