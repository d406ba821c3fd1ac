package model

import "time"

type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"` // minor currency units
	Stock       int    `gorm:"not null" json:"stock"`
	Image       string `gorm:"size:32" json:"image"`
	Description string `gorm:"size:512" json:"description"`
}

type Order struct {
	OrderID       string      `gorm:"primaryKey;size:64;not null" json:"order_id"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"items"`
	CustomerName  string      `gorm:"size:128" json:"customer_name"`
	CustomerEmail string      `gorm:"size:128;index" json:"customer_email"`
	CustomerPhone string      `gorm:"size:32" json:"customer_phone"`
	TotalAmount   int64       `gorm:"not null" json:"total_amount"`
	Status        string      `gorm:"size:32;not null" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a denormalized snapshot of the product at order time,
// immutable after the order is placed.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	OrderID     string `gorm:"size:64;index;not null" json:"-"`
	ProductID   uint   `gorm:"index;not null" json:"product_id"`
	ProductName string `gorm:"size:128;not null" json:"product_name"`
	UnitPrice   int64  `gorm:"not null" json:"price"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	LineTotal   int64  `gorm:"not null" json:"total"`
}

type CartSession struct {
	SessionID string    `gorm:"primaryKey;size:64;not null" json:"session_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	SessionID string `gorm:"size:64;index;not null" json:"-"`
	ProductID uint   `gorm:"not null" json:"id"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:128;not null" json:"name"`
	Email        string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`
	Mobile       string `gorm:"size:32" json:"mobile"`
}
