package commander

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded engine event.
type LogEntry struct {
	Tick     int
	Category string  // decision, placement, upgrade, mood, phase, difficulty, wave
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] decision   commit   place gatling at (480,320)
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-10s %-18s %s", e.Tick, e.Category, e.Key, e.Value)
}

// DecisionLog collects structured engine events. It is unbounded and
// machine-readable: tests and the headless reporter query it instead of
// scraping stdout. Per-cycle chatter only lands when verbose is on.
type DecisionLog struct {
	entries []LogEntry
	verbose bool
}

// NewDecisionLog creates a log. verbose additionally records per-cycle
// scoring and context entries.
func NewDecisionLog(verbose bool) *DecisionLog {
	return &DecisionLog{verbose: verbose}
}

// Add records an entry.
func (dl *DecisionLog) Add(tick int, category, key, value string, numVal float64) {
	dl.entries = append(dl.entries, LogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (dl *DecisionLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !dl.verbose {
		return
	}
	dl.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (dl *DecisionLog) Entries() []LogEntry {
	return dl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (dl *DecisionLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range dl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given category and key.
func (dl *DecisionLog) Count(category, key string) int {
	return len(dl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false.
func (dl *DecisionLog) LastOf(category, key string) (LogEntry, bool) {
	entries := dl.Filter(category, key)
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether any entry matches category, key, and a value
// substring (empty strings match anything).
func (dl *DecisionLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range dl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (dl *DecisionLog) FilterTickRange(fromTick, toTick int) []LogEntry {
	var out []LogEntry
	for _, e := range dl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Format returns the full log as a single string for t.Log output.
func (dl *DecisionLog) Format() string {
	var sb strings.Builder
	for _, e := range dl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
