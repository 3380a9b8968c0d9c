package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleBuyer  = "Buyer"
	RoleWorker = "Worker"
	RoleAdmin  = "Admin"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role" json:"role"`
	Coin  float64            `bson:"coin" json:"coin"`
}
