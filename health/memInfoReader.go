// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"github.com/c9s/goprocinfo/linux"
)

const (
	// DefaultMemoryReaderLocation is the default location for meminfo
	// under Linux
	DefaultMemoryReaderLocation string = "/proc/meminfo"
)

// MemInfoReader handles extracting the linux memory information from
// the enclosing environment.  On systems without a meminfo file, Read
// simply returns an error and only the Go runtime stats are tracked.
type MemInfoReader struct {
	Location string
}

// Read parses the configured Location as if it were a linux meminfo file.
func (reader *MemInfoReader) Read() (*linux.MemInfo, error) {
	location := DefaultMemoryReaderLocation
	if reader != nil && len(reader.Location) > 0 {
		location = reader.Location
	}

	return linux.ReadMemInfo(location)
}
