package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:     "8240",
		Env:      "development",
		SiteURL:  "http://localhost:8240",
		MailFrom: "no-reply@quill.local",
	}
}

func TestValidateAcceptsDevelopmentDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = ""
	assert.EqualError(t, cfg.Validate(), "PORT is required")
}

func TestValidateRejectsTrailingSlashSiteURL(t *testing.T) {
	cfg := validConfig()
	cfg.SiteURL = "https://blog.example.com/"
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresMailFrom(t *testing.T) {
	cfg := validConfig()
	cfg.MailFrom = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateProductionRejectsDefaultDBPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Env = "production"
	cfg.DBPassword = "password"
	assert.Error(t, cfg.Validate())

	cfg.DBPassword = "s0mething-str0nger"
	assert.NoError(t, cfg.Validate())
}
