// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"runtime"

	"github.com/c9s/goprocinfo/linux"
)

const (
	// Request stats
	TotalRequestsReceived            Stat = "TotalRequestsReceived"
	TotalRequestSuccessfullyServiced Stat = "TotalRequestSuccessfullyServiced"
	TotalRequestDenied               Stat = "TotalRequestDenied"

	// General memory stats
	CurrentMemoryUtilizationAlloc   Stat = "CurrentMemoryUtilizationAlloc"
	CurrentMemoryUtilizationHeapSys Stat = "CurrentMemoryUtilizationHeapSys"
	CurrentMemoryUtilizationActive  Stat = "CurrentMemoryUtilizationActive"
	MaxMemoryUtilizationAlloc       Stat = "MaxMemoryUtilizationAlloc"
	MaxMemoryUtilizationHeapSys     Stat = "MaxMemoryUtilizationHeapSys"
	MaxMemoryUtilizationActive      Stat = "MaxMemoryUtilizationActive"
)

// commonStats seeds every Health.  Each stat is present from the start so that
// the JSON representation has a stable shape.
var commonStats = Stats{
	TotalRequestsReceived:            0,
	TotalRequestSuccessfullyServiced: 0,
	TotalRequestDenied:               0,
	CurrentMemoryUtilizationAlloc:    0,
	CurrentMemoryUtilizationHeapSys:  0,
	CurrentMemoryUtilizationActive:   0,
	MaxMemoryUtilizationAlloc:        0,
	MaxMemoryUtilizationHeapSys:      0,
	MaxMemoryUtilizationActive:       0,
}

// NewStats returns a fresh copy of the common stats with the given options applied.
func NewStats(options ...Option) Stats {
	s := commonStats.Clone()
	s.Apply(options...)
	return s
}

// Option describes an option that can be set on a Stats map.
// Various types implement this interface.
type Option interface {
	Set(Stats)
}

// Stat is a named piece of data to be tracked
type Stat string

// Set ensures the stat exists, leaving any existing value intact.
func (s Stat) Set(stats Stats) {
	if _, ok := stats[s]; !ok {
		stats[s] = 0
	}
}

// HealthFunc functions are allowed to modify the passed-in stats.
type HealthFunc func(Stats)

func (f HealthFunc) Set(stats Stats) {
	f(stats)
}

// Inc increments the given stat by a certain amount
func Inc(stat Stat, value int) HealthFunc {
	return func(stats Stats) {
		stats[stat] += value
	}
}

// Set changes (or, initializes) the stat to the given value
func Set(stat Stat, value int) HealthFunc {
	return func(stats Stats) {
		stats[stat] = value
	}
}

// Stats is mapping of Stat to value
type Stats map[Stat]int

func (s Stats) Set(stats Stats) {
	for key, value := range s {
		stats[key] = value
	}
}

// Clone returns a distinct copy of this Stats object
func (s Stats) Clone() Stats {
	clone := make(Stats, len(s))
	for key, value := range s {
		clone[key] = value
	}

	return clone
}

// Apply invokes each Option.Set() on this stats map.
func (s Stats) Apply(options ...Option) {
	for _, option := range options {
		option.Set(s)
	}
}

func (s Stats) setWithMax(current, max Stat, value int) {
	s[current] = value
	if value > s[max] {
		s[max] = value
	}
}

// UpdateMemInfo sets the active memory stats from a linux meminfo, which reports kB.
func (s Stats) UpdateMemInfo(memInfo *linux.MemInfo) {
	s.setWithMax(CurrentMemoryUtilizationActive, MaxMemoryUtilizationActive, int(memInfo.Active*1024))
}

// UpdateMemStats sets the allocation stats from the golang runtime.
func (s Stats) UpdateMemStats(memStats *runtime.MemStats) {
	s.setWithMax(CurrentMemoryUtilizationAlloc, MaxMemoryUtilizationAlloc, int(memStats.Alloc))
	s.setWithMax(CurrentMemoryUtilizationHeapSys, MaxMemoryUtilizationHeapSys, int(memStats.HeapSys))
}

// UpdateMemory updates all the memory statistics.  Meminfo is optional.
func (s Stats) UpdateMemory(memInfoReader *MemInfoReader) {
	if memInfo, err := memInfoReader.Read(); err == nil {
		s.UpdateMemInfo(memInfo)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	s.UpdateMemStats(&memStats)
}
