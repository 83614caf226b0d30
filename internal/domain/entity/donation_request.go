package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request statuses. Transitions are pending -> inprogress (donor
// assigned) -> done or canceled.
const (
	RequestPending    = "pending"
	RequestInProgress = "inprogress"
	RequestDone       = "done"
	RequestCanceled   = "canceled"
)

// DonationRequest describes a need for blood. Created by an active user;
// DonorName and DonorEmail are bound when a donor picks the request up.
type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	BloodGroup     string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District       string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila        string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Hospital       string             `bson:"hospital,omitempty" json:"hospital,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	DonationDate   string             `bson:"donationDate,omitempty" json:"donationDate,omitempty"`
	DonationTime   string             `bson:"donationTime,omitempty" json:"donationTime,omitempty"`
	Message        string             `bson:"message,omitempty" json:"message,omitempty"`
	Status         string             `bson:"status" json:"status"`
	DonorName      string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail     string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
