package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Settings is the singleton aggregate shared by the storefront and the
// admin panel: store status, delivery fee and the whole catalog. Version
// increments on every save and guards concurrent full-aggregate writes.
type Settings struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	IsOpen      bool               `bson:"isOpen" json:"isOpen"`
	DeliveryFee float64            `bson:"deliveryFee" json:"deliveryFee"`
	Categories  []Category         `bson:"categories" json:"categories"`
	Items       []MenuItem         `bson:"items" json:"items"`
	Version     int64              `bson:"version" json:"version"`
}

// DefaultSettings is the aggregate created on first read when none exists.
func DefaultSettings() Settings {
	return Settings{
		IsOpen:      true,
		DeliveryFee: 5.0,
		Categories:  []Category{},
		Items:       []MenuItem{},
	}
}
