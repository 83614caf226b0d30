package repository

import "errors"

// Store-level errors shared by all repositories.
var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)

// InsertResult reports the id assigned by the store.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult mirrors the store's update acknowledgement.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult mirrors the store's delete acknowledgement.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
