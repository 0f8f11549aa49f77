// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/internal/x509/identity"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "APICTL"

// Setting keys. They double as long flag names.
const (
	KeyURL        = "url"
	KeyCACert     = "ca-cert"
	KeyClientCert = "client-cert"
	KeyClientKey  = "client-key"
	KeyTimeout    = "timeout"
	KeyVerbose    = "verbose"
	KeyOutput     = "output"
	KeyOperations = "operations"
	KeyLogFormat  = "log-format"
	KeyUserAgent  = "user-agent"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings is the resolved configuration of one invocation.
type Settings struct {
	URL        string `mapstructure:"url"`
	CACert     string `mapstructure:"ca-cert"`
	ClientCert string `mapstructure:"client-cert"`
	ClientKey  string `mapstructure:"client-key"`
	Timeout    string `mapstructure:"timeout"`
	Verbose    bool   `mapstructure:"verbose"`
	Output     string `mapstructure:"output"`
	Operations string `mapstructure:"operations"`
	LogFormat  string `mapstructure:"log-format"`
	UserAgent  string `mapstructure:"user-agent"`
}

// Loader resolves [Settings] through viper.
type Loader struct {
	// EnvFile is the dotenv file read before resolving. A missing file is ignored.
	EnvFile string

	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment lookup configured.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyURL, "")
	v.SetDefault(KeyCACert, "")
	v.SetDefault(KeyClientCert, "")
	v.SetDefault(KeyClientKey, "")
	v.SetDefault(KeyTimeout, "30s")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyOperations, "")
	v.SetDefault(KeyLogFormat, LogFormatText)
	v.SetDefault(KeyUserAgent, "")

	return &Loader{EnvFile: ".env", v: v}
}

// BindFlags binds every flag in fs whose name is a setting key, so explicitly
// set flags take precedence over all other sources.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{
		KeyURL, KeyCACert, KeyClientCert, KeyClientKey, KeyTimeout,
		KeyVerbose, KeyOutput, KeyOperations, KeyLogFormat, KeyUserAgent,
	} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", key, err)
		}
	}
	return nil
}

// Load resolves the settings. configFile is optional; when set it must exist.
func (l *Loader) Load(configFile string) (*Settings, error) {
	if l.EnvFile != "" {
		if err := godotenv.Load(l.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apierr.New(apierr.KindIO, "load "+l.EnvFile, err)
		}
	}

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, apierr.New(apierr.KindIO, "load "+configFile, err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, apierr.New(apierr.KindUsage, "settings", err)
	}
	return &s, nil
}

// Validate reports missing or conflicting settings as a UsageError before
// any file or network I/O happens.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return apierr.Errorf(apierr.KindUsage, "settings", "--url is required (or set %s_URL)", EnvPrefix)
	}
	if err := s.ValidateCredentials(); err != nil {
		return err
	}
	return s.ValidateLogFormat()
}

// ValidateCredentials enforces that the client certificate and key are
// given together or not at all.
func (s *Settings) ValidateCredentials() error {
	if (s.ClientCert == "") != (s.ClientKey == "") {
		return apierr.New(apierr.KindUsage, "settings", identity.ErrIncompletePair)
	}
	return nil
}

// ValidateLogFormat rejects unknown --log-format values.
func (s *Settings) ValidateLogFormat() error {
	switch s.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return apierr.Errorf(apierr.KindUsage, "settings", "unknown log format %q, want %s or %s",
			s.LogFormat, LogFormatText, LogFormatJSON)
	}
	return nil
}

// Paths returns the credential file paths.
func (s *Settings) Paths() identity.Paths {
	return identity.Paths{CA: s.CACert, ClientCert: s.ClientCert, ClientKey: s.ClientKey}
}
