// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package frontdoor implements the playground's primary HTTP surface:  the index page, which hosts a
browser-side Python runtime, and the /run endpoint, which acknowledges submissions without ever
looking at them.
*/
package frontdoor
