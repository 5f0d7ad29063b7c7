package models

// Category groups menu items on the storefront. Display order is the
// ascending "order" field, ties resolved by insertion order.
type Category struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Order int    `bson:"order" json:"order"`
}

// MenuItem is a single sellable entry of the catalog. Availability is a
// flag, not a deletion: unavailable items stay in the aggregate.
type MenuItem struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	CategoryID  string  `bson:"categoryId" json:"categoryId"`
	IsAvailable bool    `bson:"isAvailable" json:"isAvailable"`
	Order       int     `bson:"order" json:"order"`
}
