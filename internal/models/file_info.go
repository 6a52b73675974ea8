package models

import "time"

// DocumentInfo describes a stored document as seen on disk.
type DocumentInfo struct {
	FileName   string    `json:"file_name" msgpack:"file_name"`
	Size       int64     `json:"size" msgpack:"size"`
	ModifiedAt time.Time `json:"modified_at" msgpack:"modified_at"`
}
