package models

// ContainerInfo describes a container file from its header alone.
type ContainerInfo struct {
	Path            string `json:"path"`
	Size            int64  `json:"size"`
	CaseInsensitive bool   `json:"case_insensitive"`
	Encrypted       bool   `json:"encrypted"`
	UTF8Names       bool   `json:"utf8_names"`
}

// EntryInfo is one row of a container listing.
type EntryInfo struct {
	Name       string `json:"name"`
	Size       int    `json:"size"`
	StoredSize int    `json:"stored_size"`
	Compressed bool   `json:"compressed"`
	Digest     string `json:"digest"`
	// CompressionRecommended is set when gzip would shrink an entry that is
	// currently stored raw.
	CompressionRecommended bool `json:"compression_recommended,omitempty"`
}

// FlagUpdate lists container flag changes. Nil fields are left untouched.
type FlagUpdate struct {
	CaseInsensitive *bool
	UTF8Names       *bool
}

// IsEmpty reports whether the update changes nothing.
func (u FlagUpdate) IsEmpty() bool {
	return u.CaseInsensitive == nil && u.UTF8Names == nil
}

// AddRequest describes an entry to store.
type AddRequest struct {
	Name     string
	Data     []byte
	Compress bool
}
