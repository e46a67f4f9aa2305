// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds the zap loggers used throughout frontdoor and carries
them through request contexts.  Configuration is expressed as a sallust.Config
stored under the "log" key of the application's Viper instance.
*/
package logging
