package script

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/Wintoo12/Automation/internal/logging"
)

// ParseRepetitions derives a repeat count from the unit's filename. The
// filename must end with a hyphen followed by decimal digits immediately
// before its extension, e.g. "BSED-3-F-40.py" repeats 40 times. Filenames
// with several hyphen-number groups match only the final one.
//
// When the suffix is missing or unusable a warning is logged and the count
// defaults to 1.
func ParseRepetitions(path string, logger *logging.Logger) int {
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)

	pattern := regexp.MustCompile(`-(\d+)` + regexp.QuoteMeta(ext) + `$`)
	match := pattern.FindStringSubmatch(filename)
	if match == nil {
		logger.Warn(fmt.Sprintf("no repetition number found for %s, defaulting to 1", filename))
		return 1
	}

	repetitions, err := strconv.Atoi(match[1])
	if err != nil || repetitions < 1 {
		// Atoi only fails here on overflow-sized digit runs.
		logger.Warn(fmt.Sprintf("unusable repetition number %q for %s, defaulting to 1", match[1], filename))
		return 1
	}

	logger.Info(fmt.Sprintf("script %s will be repeated %d times", filename, repetitions))
	return repetitions
}

// Resolve returns the unit's effective repeat count: the explicitly
// configured value when present, otherwise the filename-derived count.
func (u Unit) Resolve(logger *logging.Logger) int {
	if u.Repetitions > 0 {
		return u.Repetitions
	}
	return ParseRepetitions(u.Path, logger)
}
