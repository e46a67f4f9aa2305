// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndBindNoArguments(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v  = NewViper("frontdoor-test-nosuch")
		fs = NewFlagSet("frontdoor-test-nosuch")
	)

	// no configuration file anywhere is not an error
	require.NoError(ParseAndBind(v, fs, []string{}))

	c, err := NewConfiguration(v)
	require.NoError(err)
	assert.Equal(DefaultPrimaryAddress, c.Primary.Address)
	assert.True(c.Debug)
}

func TestParseAndBindFlags(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v  = NewViper("frontdoor-test-nosuch")
		fs = NewFlagSet("frontdoor-test-nosuch")
	)

	require.NoError(ParseAndBind(v, fs, []string{"--debug=false", "--address", "127.0.0.1:0"}))

	c, err := NewConfiguration(v)
	require.NoError(err)
	assert.Equal("127.0.0.1:0", c.Primary.Address)
	assert.False(c.Debug)
}

func TestParseAndBindFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		file = filepath.Join(t.TempDir(), "frontdoor.yaml")
		v    = NewViper("frontdoor")
		fs   = NewFlagSet("frontdoor")
	)

	require.NoError(os.WriteFile(file, []byte("primary:\n  address: 127.0.0.1:9000\npprof:\n  address: 127.0.0.1:9001\n"), 0o600))
	require.NoError(ParseAndBind(v, fs, []string{"-f", file}))

	c, err := NewConfiguration(v)
	require.NoError(err)
	assert.Equal("127.0.0.1:9000", c.Primary.Address)
	assert.Equal("127.0.0.1:9001", c.Pprof.Address)
}

func TestParseAndBindMissingFile(t *testing.T) {
	var (
		v  = NewViper("frontdoor")
		fs = NewFlagSet("frontdoor")
	)

	assert.Error(t, ParseAndBind(v, fs, []string{"--file", filepath.Join(t.TempDir(), "nosuch.yaml")}))
}

func TestParseAndBindBadFlag(t *testing.T) {
	var (
		v  = NewViper("frontdoor")
		fs = NewFlagSet("frontdoor")
	)

	assert.Error(t, ParseAndBind(v, fs, []string{"--nosuch"}))
}

func TestNewViperEnvironment(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	t.Setenv("FRONTDOORENV_PRIMARY_ADDRESS", "127.0.0.1:7000")
	t.Setenv("FRONTDOORENV_DEBUG", "false")

	v := NewViper("frontdoorenv")
	c, err := NewConfiguration(v)
	require.NoError(err)
	assert.Equal("127.0.0.1:7000", c.Primary.Address)
	assert.False(c.Debug)
}
