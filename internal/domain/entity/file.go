// Package entity contains the core business objects of the project.
package entity

import "strconv"

// FileDetail represents a single downloadable file entry from the remote catalog.
// Field tags follow the catalog's capitalized wire convention.
type FileDetail struct {
	ID           string `json:"ID"`           // The catalog identifier, numeric in practice.
	Subject      string `json:"Subject"`      // The display label of the file.
	LinkDownload string `json:"LinkDownload"` // The public download URL.
}

// StorageID returns the integer identity the file is keyed by in the registry.
// Non-numeric IDs collapse to 0, matching the registry's historical contents;
// two non-numeric IDs in one listing therefore collide on the same key.
func (f *FileDetail) StorageID() int64 {
	id, err := strconv.ParseInt(f.ID, 10, 64)
	if err != nil {
		return 0
	}

	return id
}
