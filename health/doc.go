// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package health tracks request and memory statistics for frontdoor and serves them as JSON.
All mutation happens on a single event goroutine owned by Health.
*/
package health
