package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Auth:            Auth{Enabled: true, Secret: "secret"},
		Insights:        Insights{DefaultRangeDays: 30, MaxRangeDays: 366},
		RecordRetention: RecordRetention{Enabled: true, Days: 730},
	}
}

func TestConfig_validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "configuração válida", mutate: func(c *Config) {}},
		{name: "período padrão zerado", mutate: func(c *Config) { c.Insights.DefaultRangeDays = 0 }, wantErr: true},
		{name: "período máximo menor que o padrão", mutate: func(c *Config) { c.Insights.MaxRangeDays = 7 }, wantErr: true},
		{name: "retenção habilitada sem dias", mutate: func(c *Config) { c.RecordRetention.Days = 0 }, wantErr: true},
		{name: "retenção desabilitada ignora dias", mutate: func(c *Config) {
			c.RecordRetention.Enabled = false
			c.RecordRetention.Days = 0
		}},
		{name: "autenticação sem segredo", mutate: func(c *Config) { c.Auth.Secret = "" }, wantErr: true},
		{name: "autenticação desabilitada sem segredo", mutate: func(c *Config) {
			c.Auth.Enabled = false
			c.Auth.Secret = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
