package dto

import "sharpgaze-api/internal/model"

type Item struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CheckoutRequest struct {
	Items    []*Item   `json:"items"`
	Total    *int64    `json:"total,omitempty"`
	Customer *Customer `json:"customer"`
}

type CheckoutResponse struct {
	Success bool         `json:"success"`
	OrderID string       `json:"order_id"`
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
	Total   int64        `json:"total"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type CartUpdateRequest struct {
	SessionID string  `json:"session_id"`
	Cart      []*Item `json:"cart"`
}

type CartResponse struct {
	Success   bool    `json:"success"`
	SessionID string  `json:"session_id"`
	Cart      []*Item `json:"cart"`
	Message   string  `json:"message,omitempty"`
}

type AddProductRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	Version       string `json:"version"`
	ProductsCount int64  `json:"products_count"`
	OrdersCount   int64  `json:"orders_count"`
	CartSessions  int64  `json:"cart_sessions"`
}
