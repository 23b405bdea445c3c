package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Category string

const (
	CategoryClothes   Category = "Clothes"
	CategoryJewellery Category = "Jewellery"
	CategoryFlowerTea Category = "Flower Tea"
	CategoryHomeDecor Category = "Home Decor"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryClothes, CategoryJewellery, CategoryFlowerTea, CategoryHomeDecor:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Address rows are created at checkout time and never updated in-flow.
type Address struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;index;not null" json:"userId"`
	FullName  string    `gorm:"not null" json:"fullName"`
	Phone     string    `gorm:"size:16;not null" json:"phone"`
	Email     string    `gorm:"not null" json:"email"`
	Address   string    `gorm:"not null" json:"address"`
	Landmark  string    `json:"landmark,omitempty"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `gorm:"not null" json:"state"`
	Pincode   string    `gorm:"size:8;not null" json:"pincode"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    Category  `gorm:"size:32;index;not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Image       string    `gorm:"not null" json:"image"`
	AddedBy     string    `gorm:"size:64" json:"addedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is an append-only record of a payment attempt; the only in-place
// status change is the explicit refund action.
type Payment struct {
	ID             string        `gorm:"primaryKey;size:64" json:"id"`
	TransactionID  string        `gorm:"uniqueIndex;size:64;not null" json:"transactionId"`
	UserID         string        `gorm:"size:64;index;not null" json:"userId"`
	PaymentMethod  string        `gorm:"size:32;not null" json:"paymentMethod"`
	Amount         float64       `gorm:"not null" json:"amount"`
	Status         PaymentStatus `gorm:"size:16;index;not null;default:'pending'" json:"status"`
	UpiID          string        `json:"upiId,omitempty"`
	CardLast4      string        `gorm:"size:4" json:"cardLast4,omitempty"`
	GatewayOrderID string        `gorm:"size:64;index" json:"gatewayOrderId,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type Order struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id"`
	OrderID     string         `gorm:"uniqueIndex;size:64;not null" json:"orderId"`
	UserID      string         `gorm:"size:64;index;not null" json:"userId"`
	Products    []OrderProduct `gorm:"foreignKey:OrderRef;references:ID;constraint:OnDelete:CASCADE" json:"products"`
	AddressID   string         `gorm:"size:64;not null" json:"addressId"`
	PaymentID   string         `gorm:"size:64;not null" json:"paymentId"`
	TotalAmount float64        `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus    `gorm:"size:16;index;not null;default:'confirmed'" json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// OrderProduct is a snapshot line: name, price and image are frozen at
// checkout so later catalog edits never rewrite order history.
type OrderProduct struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderRef  string  `gorm:"size:64;index;not null" json:"-"`
	ProductID string  `gorm:"size:64;not null" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Image     string  `json:"image"`
}

// All lists every persisted model, in AutoMigrate order.
func All() []any {
	return []any{
		&User{},
		&Address{},
		&Product{},
		&Payment{},
		&Order{},
		&OrderProduct{},
	}
}
