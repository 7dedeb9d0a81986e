package model

import (
	"time"

	"github.com/lib/pq"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          string `gorm:"type:varchar(255);primary_key"`
	Name        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SellerModel is the GORM-specific struct for the 'sellers' table.
type SellerModel struct {
	ID     string    `gorm:"type:varchar(255);primary_key"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Rating float64   `gorm:"type:float"`
	Joined time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID        string         `gorm:"type:varchar(255);primary_key"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	JoinDate  time.Time
	Interests pq.StringArray `gorm:"type:text[]"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
