package scaffold

import (
	"fmt"
	"strconv"
	"time"
)

// MigrationStamp is minted once per run and threaded into both the migration
// file name and the migration class name.
type MigrationStamp struct {
	t time.Time
}

// NewMigrationStamp captures t in UTC at millisecond precision.
func NewMigrationStamp(t time.Time) MigrationStamp {
	return MigrationStamp{t: t.UTC().Truncate(time.Millisecond)}
}

// Time returns the captured instant.
func (s MigrationStamp) Time() time.Time {
	return s.t
}

// FileLabel is the human-readable form used in the file name:
// "2026-10-19-153000-123". It carries the same millisecond as Compact.
func (s MigrationStamp) FileLabel() string {
	return s.t.Format("2006-01-02-150405") + fmt.Sprintf("-%03d", s.t.Nanosecond()/int(time.Millisecond))
}

// Compact is the numeric form used in the class name: Unix milliseconds.
func (s MigrationStamp) Compact() string {
	return strconv.FormatInt(s.t.UnixMilli(), 10)
}

// MigrationClassName returns the exported migration class name.
func MigrationClassName(names EntityNames, stamp MigrationStamp) string {
	return "Create" + names.TypeName + stamp.Compact()
}
