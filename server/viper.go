// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileFlagName is the command line flag holding the path of a configuration file
	FileFlagName = "file"

	// DebugFlagName is the command line flag that toggles developer diagnostics
	DebugFlagName = "debug"

	// AddressFlagName is the command line flag overriding the primary server's bind address
	AddressFlagName = "address"
)

// NewViper produces a Viper instance configured with frontdoor conventions.
// The applicationName is used as the configuration file name, the environment prefix,
// and to generate the path under /etc and $HOME to look for configuration files.
// Automatic environment mode is turned on, with nested keys separated by underscores,
// e.g. FRONTDOOR_PRIMARY_ADDRESS.
func NewViper(applicationName string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(applicationName)
	v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(applicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// NewFlagSet creates the command line flags understood by frontdoor.  Flag defaults mirror the
// configuration defaults.
func NewFlagSet(applicationName string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(FileFlagName, "f", "", "the fully-qualified path of the configuration file")
	fs.Bool(DebugFlagName, DefaultDebug, "enables developer diagnostics")
	fs.String(AddressFlagName, DefaultPrimaryAddress, "the bind address of the primary server")
	return fs
}

// ParseAndBind parses the given flag set using the supplied arguments, binds the flags to
// the Viper instance, and then reads configuration.  When the file flag is set, that file must
// exist.  Otherwise, a missing configuration file is not an error.
func ParseAndBind(v *viper.Viper, fs *pflag.FlagSet, arguments []string) error {
	if err := fs.Parse(arguments); err != nil {
		return err
	}

	if f := fs.Lookup(DebugFlagName); f != nil {
		if err := v.BindPFlag("debug", f); err != nil {
			return err
		}
	}

	if f := fs.Lookup(AddressFlagName); f != nil {
		if err := v.BindPFlag("primary.address", f); err != nil {
			return err
		}
	}

	explicit := false
	if f := fs.Lookup(FileFlagName); f != nil && len(f.Value.String()) > 0 {
		v.SetConfigFile(f.Value.String())
		explicit = true
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("unable to read configuration: %w", err)
		}
	}

	return nil
}
