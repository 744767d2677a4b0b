package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedVideoExts = map[string]bool{
	".mp4": true,
	".mov": true,
	".mkv": true,
	".avi": true,
}

// isAllowedVideoFilename checks the extension case-insensitively.
func isAllowedVideoFilename(name string) bool {
	return allowedVideoExts[strings.ToLower(filepath.Ext(name))]
}

// storedFilename prefixes the client filename with a uuid so concurrent
// uploads of the same name cannot collide. Any client-supplied directory
// parts are stripped.
func storedFilename(original string) string {
	return fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(original))
}
