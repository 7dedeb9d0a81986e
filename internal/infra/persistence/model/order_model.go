package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Rows are immutable once written.
type OrderModel struct {
	ID         string          `gorm:"type:varchar(255);primary_key"`
	UserID     string          `gorm:"type:varchar(255);not null;index"`
	OrderDate  time.Time       `gorm:"not null"`
	Status     string          `gorm:"type:varchar(50);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// The (order_id, product_id) pair is the composite primary key; PriceAtPurchase
// is a snapshot and never follows later product price changes.
type OrderItemModel struct {
	OrderID         string          `gorm:"type:varchar(255);primary_key"`
	ProductID       string          `gorm:"type:varchar(255);primary_key;index"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
