// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          string          `gorm:"type:varchar(255);primary_key"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  string          `gorm:"type:varchar(255);index"`
	SellerID    string          `gorm:"type:varchar(255);index"`
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Stock       int             `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductEmbeddingModel is the GORM-specific struct for the 'product_embeddings' table.
// Embeddings live in their own table so the hot product rows stay narrow.
type ProductEmbeddingModel struct {
	ProductID string          `gorm:"type:varchar(255);primary_key"`
	Embedding pgvector.Vector `gorm:"type:vector(384)"`
}

// TableName explicitly sets the table name for GORM.
func (ProductEmbeddingModel) TableName() string {
	return "product_embeddings"
}
