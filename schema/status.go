package schema

import (
	"strconv"
	"time"
)

// StoreStatus represents the status of the profile store.
type StoreStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	Target          string    `json:"target"`
	SchemaVersion   uint      `json:"schema_version"`
	TotalProfiles   int64     `json:"total_profiles"`
	Departments     int64     `json:"departments"`
	OldestProfileAt time.Time `json:"oldest_profile_at"`
	LatestProfileAt time.Time `json:"latest_profile_at"`
}

// StoreRevision identifies the current contents of an append-only profile store.
// Any insert changes it, which lets derived results be cached safely.
type StoreRevision struct {
	Count    int64     `json:"count"`
	LatestAt time.Time `json:"latest_at"`
}

// Key returns the revision in a form usable as part of a cache key.
func (r StoreRevision) Key() string {
	return r.LatestAt.UTC().Format(time.RFC3339Nano) + "#" + strconv.FormatInt(r.Count, 10)
}
