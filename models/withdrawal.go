package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
)

type Withdrawal struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	WorkerEmail      string             `bson:"worker_email" json:"worker_email"`
	WorkerName       string             `bson:"worker_name,omitempty" json:"worker_name,omitempty"`
	WithdrawalCoin   float64            `bson:"withdrawal_coin" json:"withdrawal_coin"`
	WithdrawalAmount float64            `bson:"withdrawal_amount" json:"withdrawal_amount"`
	PaymentSystem    string             `bson:"payment_system,omitempty" json:"payment_system,omitempty"`
	AccountNumber    string             `bson:"account_number,omitempty" json:"account_number,omitempty"`
	WithdrawDate     string             `bson:"withdraw_date,omitempty" json:"withdraw_date,omitempty"`
	Status           WithdrawalStatus   `bson:"status" json:"status"`
}
