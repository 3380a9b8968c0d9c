package models

import "go.mongodb.org/mongo-driver/mongo"

// Acknowledgment payloads mirror the raw driver results the API hands back
// to the client on every write.

type InsertAck struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertAck(res *mongo.InsertOneResult) InsertAck {
	return InsertAck{Acknowledged: true, InsertedID: res.InsertedID}
}

func NewUpdateAck(res *mongo.UpdateResult) UpdateAck {
	return UpdateAck{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
}

func NewDeleteAck(res *mongo.DeleteResult) DeleteAck {
	return DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}
}
