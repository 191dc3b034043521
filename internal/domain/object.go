package domain

import "time"

// ObjectRecord is the metadata of one stored file, as visible through the
// query path. NamespaceID always equals the owning principal's ID.
type ObjectRecord struct {
	NamespaceID  string    `json:"namespace_id"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
}
