package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Task struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TaskTitle       string             `bson:"task_title" json:"task_title"`
	TaskDetail      string             `bson:"task_detail" json:"task_detail"`
	SubmissionInfo  string             `bson:"submission_info" json:"submission_info"`
	RequiredWorkers int                `bson:"required_workers" json:"required_workers"`
	PayableAmount   float64            `bson:"payable_amount,omitempty" json:"payable_amount,omitempty"`
	CompletionDate  string             `bson:"completion_date,omitempty" json:"completion_date,omitempty"`
	TaskImage       string             `bson:"task_image,omitempty" json:"task_image,omitempty"`
	Email           string             `bson:"email" json:"email"`
	BuyerName       string             `bson:"buyer_name,omitempty" json:"buyer_name,omitempty"`
}

// TaskContentUpdate carries the three editable fields of a task.
// Everything else on the document stays untouched on update.
type TaskContentUpdate struct {
	TaskTitle      string `bson:"task_title" json:"task_title"`
	TaskDetail     string `bson:"task_detail" json:"task_detail"`
	SubmissionInfo string `bson:"submission_info" json:"submission_info"`
}
