package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one registered account. Transactions lists the ids of the
// transactions the user owns, in append order.
type User struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name         string               `json:"name" bson:"name"`
	Email        string               `json:"email" bson:"email"`
	Password     string               `json:"password,omitempty" bson:"password"`
	Transactions []primitive.ObjectID `json:"transactions" bson:"transactions"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
}

// Sanitized returns a copy of the user with the credential hash removed.
// Every response that carries a user goes through this.
func (u User) Sanitized() *User {
	u.Password = ""
	return &u
}
