package config

import (
	"fmt"
	"strings"
	"time"
)

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	Issuer string        `koanf:"issuer"`
	Expiry time.Duration `koanf:"expiry"`
}

// String returns a string representation of the JWT configuration.
// The signing secret is never printed.
func (c *JWTConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- JWT ---\n")
	b.WriteString(fmt.Sprintf("  issuer: %s\n", c.Issuer))
	b.WriteString(fmt.Sprintf("  expiry: %s\n", c.Expiry))
	b.WriteString("  secret: ****\n")
	return b.String()
}

func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("jwt secret is not configured")
	}
	if c.Issuer == "" {
		return fmt.Errorf("jwt issuer is not configured")
	}
	if c.Expiry <= 0 {
		return fmt.Errorf("invalid jwt expiry: %v", c.Expiry)
	}
	return nil
}
