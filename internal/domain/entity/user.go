package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user may hold. Donors are the default; volunteers and admins may
// manage users, blogs, and payments.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// User statuses. Only active users may create donation requests.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User is a registered account. Email is the natural key; registration with
// an already known email is a no-op.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	AvatarURL  string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// RoleOrDefault returns the stored role, defaulting to donor when unset.
func (u *User) RoleOrDefault() string {
	if u.Role == "" {
		return RoleDonor
	}
	return u.Role
}

// Elevated reports whether the user may pass the admin/volunteer gate.
func (u *User) Elevated() bool {
	return u.Role == RoleAdmin || u.Role == RoleVolunteer
}
