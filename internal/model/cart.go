package model

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line in a cart. Price is captured at the time the item
// was added and does not follow later catalog changes.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	VariantID primitive.ObjectID `bson:"variant" json:"variant"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Price     float64            `bson:"price" json:"price"`
}

// Cart holds the line items of a single user. TotalAmount is derived:
// it must equal the sum of price*quantity over Items after every mutation.
type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	Items       []CartItem         `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Total computes the sum of price*quantity over the current items.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartStore defines persistence for carts, one document per user.
// Update replaces the whole document so each mutation is a single
// atomic write.
type CartStore interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (Cart, error)
	Create(ctx context.Context, cart Cart) (Cart, error)
	Update(ctx context.Context, cart Cart) (Cart, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

// ExpandedCartItem is a cart line with its catalog references resolved.
// Product or Variant may be nil when the referenced document no longer
// exists.
type ExpandedCartItem struct {
	Product  *Product        `json:"product"`
	Variant  *ProductVariant `json:"variant"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}

// ExpandedCart is the read model returned by cart retrieval.
type ExpandedCart struct {
	ID          primitive.ObjectID `json:"_id"`
	UserID      primitive.ObjectID `json:"user"`
	Items       []ExpandedCartItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
