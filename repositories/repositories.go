// Package repositories implements collection access over the JSON store.
// Every mutation loads the full collection, edits it in place and writes
// it back inside store.Update, so the collection lock covers the whole
// read-modify-write.
package repositories

import "errors"

const (
	CollectionUsers         = "users"
	CollectionAnnouncements = "announcements"
	CollectionPolls         = "polls"
	CollectionDictionary    = "dictionary"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
