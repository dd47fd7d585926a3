// Package batteryinfo turns the text printed by `ideviceinfo -q
// com.apple.mobile.battery` into a report.
package batteryinfo

import (
	"regexp"
	"strings"
)

// lineRe splits a line into key and value. The key group is greedy, so a
// value that itself contains ": " is split at the last such boundary.
var lineRe = regexp.MustCompile(`^(.+):\s(.+)`)

// Info maps a lockdown key to its value as printed by the tool.
type Info map[string]string

// Get returns the value for key, or Placeholder if it is missing.
func (i Info) Get(key string) string {
	if v, ok := i[key]; ok {
		return v
	}
	return Placeholder
}

// Parse extracts key/value pairs from raw, one per line. Lines that do not
// look like "key: value" are ignored. Later duplicates overwrite earlier
// ones. The result is never nil.
func Parse(raw string) Info {
	info := Info{}
	for _, line := range strings.Split(raw, "\n") {
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		info[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}
	return info
}
