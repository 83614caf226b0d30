package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog is a content post. Only published posts appear on the public feed.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Content   string             `bson:"content" json:"content"`
	Status    string             `bson:"status" json:"status"`
}
