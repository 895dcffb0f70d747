package sales

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"market_api/internal/products"
)

// Sale represents a sales transaction. Product is a snapshot of the referenced
// product taken at creation time; later changes to the product never propagate
// here, so the sale history survives product edits and deletions.
type Sale struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date    time.Time          `json:"date" bson:"date"`
	Value   float64            `json:"value" bson:"value"`
	Product products.Product   `json:"product" bson:"product"`
}
