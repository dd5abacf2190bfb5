package service

import (
	"context"
	"time"

	"cafe-backend/internal/domain"
)

type CategoryRepository interface {
	CreateCategory(c *domain.Category) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(id int, fields map[string]interface{}) (*domain.Category, error)
}

type MenuRepository interface {
	CreateMenu(m *domain.Menu) error
	ListMenus(f domain.MenuFilter) ([]domain.Menu, error)
	GetMenu(id int) (*domain.Menu, error)
	UpdateMenu(id int, fields map[string]interface{}) (*domain.Menu, error)
	DeleteMenu(id int) error
}

type UserRepository interface {
	CreateUser(u *domain.User) error
	ListUsers(skip, limit int) ([]domain.User, error)
	GetUser(id int) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	UpdateUser(id int, fields map[string]interface{}) (*domain.User, error)
}

type OrderRepository interface {
	PlaceOrder(order *domain.Order, lines []domain.OrderLine) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders(f domain.OrderFilter) ([]domain.OrderSummary, error)
	UpdateOrder(id int, fields map[string]interface{}) (*domain.Order, error)
	DeleteOrder(id int) error
	ListOrdersBetween(from, to time.Time) ([]domain.Order, error)
}

// MenuCacheStore is an optional read cache in front of GetMenu.
type MenuCacheStore interface {
	GetMenu(ctx context.Context, id int) (*domain.Menu, bool)
	SetMenu(ctx context.Context, m *domain.Menu) error
	Invalidate(ctx context.Context, id int) error
}

// OrderEventPublisher receives order lifecycle events. Publishing is best
// effort and never fails the request.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	CreateCategory(req CategoryCreate) (*domain.Category, error)
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(id int, req CategoryUpdate) (*domain.Category, error)

	CreateMenu(req MenuCreate) (*domain.Menu, error)
	ListMenus(f domain.MenuFilter) ([]domain.Menu, error)
	GetMenu(ctx context.Context, id int) (*domain.Menu, error)
	UpdateMenu(ctx context.Context, id int, req MenuUpdate) (*domain.Menu, error)
	DeleteMenu(ctx context.Context, id int) error
}

type UserServiceInterface interface {
	Create(req UserCreate) (*domain.User, error)
	List(skip, limit int) ([]domain.User, error)
	Get(id int) (*domain.User, error)
	Update(id int, req UserUpdate) (*domain.User, error)
	UpdatePassword(id int, req PasswordUpdate) error
	Authenticate(username, password string) (*domain.User, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, req OrderCreate) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List(f domain.OrderFilter) ([]domain.OrderSummary, error)
	Update(ctx context.Context, id int, req OrderUpdate) (*domain.Order, error)
	Delete(id int) error
	Ticket(id int) ([]byte, error)
	Report(from, to time.Time) ([]byte, error)
}
