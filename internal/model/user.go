// Package model defines the data model and the request/response schema
// types validated at the API boundary.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCreditBalance is the number of image-generation credits granted
// to every newly registered user.
const DefaultCreditBalance = 5

// User represents the user document in the store.
type User struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	CreditBalance int                `json:"creditBalance" bson:"creditBalance"`
	CreatedAt     int64              `json:"created_at" bson:"createdAt"`
	UpdatedAt     int64              `json:"updated_at" bson:"updatedAt"`
}

// PublicView returns the subset of the user record that is safe to send
// to the client. The password hash is never serialized outward.
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		Name:          u.Name,
		Email:         u.Email,
		CreditBalance: u.CreditBalance,
	}
}

// PublicUser is the client-facing view of a user.
type PublicUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CreditBalance int    `json:"creditBalance"`
}
