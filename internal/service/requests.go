package service

import (
	"strings"
	"time"

	"cafe-backend/internal/domain"
)

// Request shapes and their validation rules. Pointer fields mean "absent unless
// set": updates only touch columns the client actually sent.

type CategoryCreate struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

func (r CategoryCreate) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if len(r.Name) > 100 {
		return domain.Invalid("name", "must be at most 100 characters")
	}
	if r.DisplayOrder < 0 {
		return domain.Invalid("display_order", "must not be negative")
	}
	return nil
}

type CategoryUpdate struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
}

func (r CategoryUpdate) Validate() error {
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return domain.Invalid("name", "must not be empty")
		}
		if len(*r.Name) > 100 {
			return domain.Invalid("name", "must be at most 100 characters")
		}
	}
	if r.DisplayOrder != nil && *r.DisplayOrder < 0 {
		return domain.Invalid("display_order", "must not be negative")
	}
	return nil
}

func (r CategoryUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.DisplayOrder != nil {
		fields["display_order"] = *r.DisplayOrder
	}
	return fields
}

type MenuCreate struct {
	Name        string `json:"name"`
	CategoryID  int    `json:"category_id"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsAvailable *bool  `json:"is_available"`
}

func (r MenuCreate) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if len(r.Name) > 200 {
		return domain.Invalid("name", "must be at most 200 characters")
	}
	if r.CategoryID <= 0 {
		return domain.Invalid("category_id", "must be a positive id")
	}
	if r.Price < 0 {
		return domain.Invalid("price", "must not be negative")
	}
	if len(r.Description) > 1000 {
		return domain.Invalid("description", "must be at most 1000 characters")
	}
	if len(r.ImageURL) > 500 {
		return domain.Invalid("image_url", "must be at most 500 characters")
	}
	return nil
}

type MenuUpdate struct {
	Name        *string `json:"name"`
	CategoryID  *int    `json:"category_id"`
	Price       *int    `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsAvailable *bool   `json:"is_available"`
}

func (r MenuUpdate) Validate() error {
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return domain.Invalid("name", "must not be empty")
		}
		if len(*r.Name) > 200 {
			return domain.Invalid("name", "must be at most 200 characters")
		}
	}
	if r.CategoryID != nil && *r.CategoryID <= 0 {
		return domain.Invalid("category_id", "must be a positive id")
	}
	if r.Price != nil && *r.Price < 0 {
		return domain.Invalid("price", "must not be negative")
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		return domain.Invalid("description", "must be at most 1000 characters")
	}
	if r.ImageURL != nil && len(*r.ImageURL) > 500 {
		return domain.Invalid("image_url", "must be at most 500 characters")
	}
	return nil
}

func (r MenuUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	if r.IsAvailable != nil {
		fields["is_available"] = *r.IsAvailable
	}
	return fields
}

type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"-"` // never decoded from request bodies
}

func (r UserCreate) Validate() error {
	if len(r.Username) < 3 || len(r.Username) > 50 {
		return domain.Invalid("username", "must be 3 to 50 characters")
	}
	if !strings.Contains(r.Email, "@") || len(r.Email) > 100 {
		return domain.Invalid("email", "must be a valid address")
	}
	if len(r.Password) < 6 || len(r.Password) > 100 {
		return domain.Invalid("password", "must be 6 to 100 characters")
	}
	return nil
}

type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"-"` // never decoded from request bodies
}

func (r UserUpdate) Validate() error {
	if r.Username != nil && (len(*r.Username) < 3 || len(*r.Username) > 50) {
		return domain.Invalid("username", "must be 3 to 50 characters")
	}
	if r.Email != nil && (!strings.Contains(*r.Email, "@") || len(*r.Email) > 100) {
		return domain.Invalid("email", "must be a valid address")
	}
	return nil
}

func (r UserUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Username != nil {
		fields["username"] = *r.Username
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	if r.IsAdmin != nil {
		fields["is_admin"] = *r.IsAdmin
	}
	return fields
}

type PasswordUpdate struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r PasswordUpdate) Validate() error {
	if len(r.NewPassword) < 6 || len(r.NewPassword) > 100 {
		return domain.Invalid("new_password", "must be 6 to 100 characters")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OrderItemCreate struct {
	MenuID   int    `json:"menu_id"`
	Quantity int    `json:"quantity"`
	Options  string `json:"options"`
}

type OrderCreate struct {
	UserID        *int              `json:"user_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	PickupTime    *time.Time        `json:"pickup_time"`
	Notes         string            `json:"notes"`
	Items         []OrderItemCreate `json:"items"`
}

func (r OrderCreate) Validate() error {
	if len(r.CustomerName) < 2 || len(r.CustomerName) > 50 {
		return domain.Invalid("customer_name", "must be 2 to 50 characters")
	}
	if len(r.CustomerPhone) < 10 || len(r.CustomerPhone) > 20 {
		return domain.Invalid("customer_phone", "must be 10 to 20 characters")
	}
	if len(r.Notes) > 500 {
		return domain.Invalid("notes", "must be at most 500 characters")
	}
	if len(r.Items) == 0 {
		return domain.Invalid("items", "at least one item is required")
	}
	for _, item := range r.Items {
		if item.MenuID <= 0 {
			return domain.Invalid("items", "menu_id must be a positive id")
		}
		if item.Quantity <= 0 {
			return domain.Invalid("items", "quantity must be greater than zero")
		}
		if len(item.Options) > 200 {
			return domain.Invalid("items", "options must be at most 200 characters")
		}
	}
	return nil
}

type OrderUpdate struct {
	Status        *domain.OrderStatus `json:"status"`
	CustomerName  *string             `json:"customer_name"`
	CustomerPhone *string             `json:"customer_phone"`
	PickupTime    *time.Time          `json:"pickup_time"`
	Notes         *string             `json:"notes"`
}

func (r OrderUpdate) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return domain.Invalid("status", "unknown status value")
	}
	if r.CustomerName != nil && (len(*r.CustomerName) < 2 || len(*r.CustomerName) > 50) {
		return domain.Invalid("customer_name", "must be 2 to 50 characters")
	}
	if r.CustomerPhone != nil && (len(*r.CustomerPhone) < 10 || len(*r.CustomerPhone) > 20) {
		return domain.Invalid("customer_phone", "must be 10 to 20 characters")
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		return domain.Invalid("notes", "must be at most 500 characters")
	}
	return nil
}

func (r OrderUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.CustomerName != nil {
		fields["customer_name"] = *r.CustomerName
	}
	if r.CustomerPhone != nil {
		fields["customer_phone"] = *r.CustomerPhone
	}
	if r.PickupTime != nil {
		fields["pickup_time"] = *r.PickupTime
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}
