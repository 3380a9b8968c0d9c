package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	Coins         float64            `bson:"coins,omitempty" json:"coins,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
