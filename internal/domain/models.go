package domain

import "time"

// Prices are stored in integer minor currency units (won), never floats.

type Category struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`

	Menus []Menu `gorm:"foreignKey:CategoryID" json:"-"`
}

type Menu struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;index;not null" json:"name"`
	CategoryID  int       `gorm:"index;not null" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Price       int       `gorm:"not null" json:"price"`
	Description string    `gorm:"size:1000" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
}

type User struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

type Order struct {
	ID            int         `gorm:"primaryKey" json:"id"`
	UserID        *int        `gorm:"index" json:"user_id"` // nil for guest checkout
	TotalAmount   int         `gorm:"not null" json:"total_amount"`
	Status        OrderStatus `gorm:"size:20;default:pending" json:"status"`
	CustomerName  string      `gorm:"size:50;not null" json:"customer_name"`
	CustomerPhone string      `gorm:"size:20;not null" json:"customer_phone"`
	PickupTime    *time.Time  `json:"pickup_time"`
	Notes         string      `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	OrderID  int    `gorm:"index;not null" json:"order_id"`
	MenuID   int    `gorm:"index;not null" json:"menu_id"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Price    int    `gorm:"not null" json:"price"` // snapshot of Menu.Price at order time
	Subtotal int    `gorm:"not null" json:"subtotal"`
	Options  string `gorm:"size:200" json:"options"`

	Menu *Menu `gorm:"foreignKey:MenuID" json:"menu,omitempty"`
}

// OrderSummary is the list projection of an order: no items, just their count.
type OrderSummary struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	TotalAmount   int         `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	ItemCount     int         `json:"item_count"`
}

// OrderEvent is published to the event stream when an order is created or
// changes status. Delivery is best effort.
type OrderEvent struct {
	OrderID     int         `json:"order_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount int         `json:"total_amount"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
