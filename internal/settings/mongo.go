package settings

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cardapio/internal/models"
)

// MongoStore keeps the singleton in the "settings" collection, one
// document, version-checked on every write.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.db.Collection("settings")
}

func (s *MongoStore) Load(ctx context.Context) (models.Settings, error) {
	var out models.Settings
	err := s.collection().FindOne(ctx, bson.M{}).Decode(&out)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Settings{}, err
	}

	def := models.DefaultSettings()
	def.Version = 1
	res, err := s.collection().InsertOne(ctx, def)
	if err != nil {
		return models.Settings{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		def.ID = id
	}
	log.Println("[settings] created default aggregate")
	return def, nil
}

func (s *MongoStore) Save(ctx context.Context, in models.Settings) (models.Settings, error) {
	if in.ID.IsZero() {
		return models.Settings{}, errors.New("settings document has no id; Load first")
	}

	update := bson.M{"$set": bson.M{
		"isOpen":      in.IsOpen,
		"deliveryFee": in.DeliveryFee,
		"categories":  in.Categories,
		"items":       in.Items,
		"version":     in.Version + 1,
	}}

	var updated models.Settings
	err := s.collection().
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": in.ID, "version": in.Version},
			update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Settings{}, ErrVersionConflict
	}
	if err != nil {
		return models.Settings{}, err
	}
	return updated, nil
}
