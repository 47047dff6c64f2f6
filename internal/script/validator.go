package script

import (
	"fmt"
	"os"

	"github.com/Wintoo12/Automation/internal/logging"
)

// Validate checks that path names a runnable script: it must exist, be a
// regular file and be readable by this process. Checks run in that order
// and stop at the first failure, which is logged at error level.
func Validate(path string, logger *logging.Logger) bool {
	info, err := os.Stat(path)
	if err != nil {
		logger.Error(fmt.Sprintf("script does not exist: %s", path))
		return false
	}

	if !info.Mode().IsRegular() {
		logger.Error(fmt.Sprintf("not a file: %s", path))
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error(fmt.Sprintf("script is not readable: %s", path))
		return false
	}
	f.Close()

	return true
}
