package models

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable item owned by a Category.
// Price and stock are never negative; the store enforces both with CHECK constraints.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;check:price >= 0"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0"`
	CategoryID  uint            `gorm:"not null;index"`

	// Category is declared for the foreign key only and is never loaded.
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (p *Product) TableName() string {
	return "products"
}
