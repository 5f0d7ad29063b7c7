package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Orders are created finalizado at checkout; pendente
// exists in stored data but has no transition in the current flows.
const (
	StatusPendente   = "pendente"
	StatusFinalizado = "finalizado"
)

// OrderItem is one line of a persisted order. Field names follow the stored
// documents and must not change.
type OrderItem struct {
	Nome       string  `bson:"nome" json:"nome"`
	Quantidade int     `bson:"quantidade" json:"quantidade"`
	Preco      float64 `bson:"preco" json:"preco"`
	Observacao string  `bson:"observacao,omitempty" json:"observacao,omitempty"`
}

// Cliente holds the contact details supplied at checkout.
type Cliente struct {
	Nome     string `bson:"nome" json:"nome"`
	Telefone string `bson:"telefone" json:"telefone"`
}

// Address is the delivery street address.
type Address struct {
	Street       string `bson:"street" json:"street"`
	Number       string `bson:"number" json:"number"`
	Complement   string `bson:"complement,omitempty" json:"complement,omitempty"`
	Neighborhood string `bson:"neighborhood" json:"neighborhood"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state" json:"state"`
	ZipCode      string `bson:"zipCode" json:"zipCode"`
}

// Endereco couples the address with the fee and estimate quoted for it.
type Endereco struct {
	Address       Address `bson:"address" json:"address"`
	DeliveryFee   float64 `bson:"deliveryFee" json:"deliveryFee"`
	EstimatedTime string  `bson:"estimatedTime" json:"estimatedTime"`
}

// Order defines the persisted order document. Immutable after creation
// except for explicit deletion by staff.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Itens          []OrderItem        `bson:"itens" json:"itens"`
	Total          float64            `bson:"total" json:"total"`
	Status         string             `bson:"status" json:"status"`
	Data           time.Time          `bson:"data" json:"data"`
	Cliente        Cliente            `bson:"cliente" json:"cliente"`
	Endereco       Endereco           `bson:"endereco" json:"endereco"`
	FormaPagamento string             `bson:"formaPagamento" json:"formaPagamento"`
	Observacoes    string             `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
}
