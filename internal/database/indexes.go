package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureOrderIndexes backs the newest-first order listing.
func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	dataIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "data", Value: -1}},
		Options: options.Index().SetName("data_desc"),
	}

	log.Println("EnsureOrderIndexes: creating data_desc index")
	_, err := indexes.CreateOne(ctx, dataIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: data index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: data_desc index created")
	return nil
}

// EnsureStaffIndexes keeps staff emails unique.
func EnsureStaffIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("staff").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureStaffIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureStaffIndexes: email index error:", err)
		return err
	}
	log.Println("EnsureStaffIndexes: email_unique index created")
	return nil
}
