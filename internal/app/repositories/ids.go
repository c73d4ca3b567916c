package repositories

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID produces a collection-unique identifier: a base-36 millisecond
// timestamp (monotonically distinguishable across inserts) followed by a
// random suffix that makes collisions within the same millisecond negligible.
func GenerateID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return ts + suffix
}
