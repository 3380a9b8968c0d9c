package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

type Submission struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TaskID            string             `bson:"task_id" json:"task_id"`
	TaskTitle         string             `bson:"task_title,omitempty" json:"task_title,omitempty"`
	PayableAmount     float64            `bson:"payable_amount" json:"payable_amount"`
	WorkerEmail       string             `bson:"worker_email" json:"worker_email"`
	WorkerName        string             `bson:"worker_name,omitempty" json:"worker_name,omitempty"`
	BuyerEmail        string             `bson:"buyer_email" json:"buyer_email"`
	BuyerName         string             `bson:"buyer_name,omitempty" json:"buyer_name,omitempty"`
	SubmissionDetails string             `bson:"submission_details,omitempty" json:"submission_details,omitempty"`
	CurrentDate       string             `bson:"current_date,omitempty" json:"current_date,omitempty"`
	Status            SubmissionStatus   `bson:"status" json:"status"`
}
