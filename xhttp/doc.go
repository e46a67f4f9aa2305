// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xhttp contains the net/http plumbing shared by frontdoor's servers: server
construction and starting, constant and JSON responses, and Alice-style decorators.
*/
package xhttp
