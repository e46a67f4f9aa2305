// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server provides the standard approach to configuring and executing frontdoor's HTTP servers:
the primary server, plus the optional health/metrics and pprof servers.
*/
package server
