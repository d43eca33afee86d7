package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog modes supported by the product service. In owner mode every
// record is visible and mutable only to the user that created it; in
// shared mode all authenticated users work on one catalog and the
// attribution columns record who touched each record last.
const (
	CatalogModeOwner  = "owner"
	CatalogModeShared = "shared"
)

// Product represents a catalog record.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string          `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Description string          `json:"description" gorm:"type:text" validate:"required"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock       int             `json:"stockCount" validate:"gte=0"`
	UserID      string          `json:"userId" gorm:"type:varchar(36);index;not null"`
	CreatedBy   string          `json:"createdBy" gorm:"type:varchar(36)"`
	UpdatedBy   string          `json:"updatedBy" gorm:"type:varchar(36)"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductCreate carries the fields required to create a product.
type ProductCreate struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// Scope is the predicate restricting which product rows an operation may
// observe or affect. UserID is always the acting user; when Shared is set
// the owner column does not filter rows and UserID is used for attribution
// only.
type Scope struct {
	UserID string
	Shared bool
}
