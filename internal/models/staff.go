package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Staff struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
}
