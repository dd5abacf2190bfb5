// Package mocks contains testify mocks for the service-layer interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"cafe-backend/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CategoryRepository struct {
	mock.Mock
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CategoryRepository) CreateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *CategoryRepository) ListCategories() ([]domain.Category, error) {
	args := m.Called()
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *CategoryRepository) GetCategory(id int) (*domain.Category, error) {
	args := m.Called(id)
	var c *domain.Category
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Category)
	}
	return c, args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(id int, fields map[string]interface{}) (*domain.Category, error) {
	args := m.Called(id, fields)
	var c *domain.Category
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Category)
	}
	return c, args.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateMenu(menu *domain.Menu) error {
	return m.Called(menu).Error(0)
}

func (m *MenuRepository) ListMenus(f domain.MenuFilter) ([]domain.Menu, error) {
	args := m.Called(f)
	var menus []domain.Menu
	if args.Get(0) != nil {
		menus = args.Get(0).([]domain.Menu)
	}
	return menus, args.Error(1)
}

func (m *MenuRepository) GetMenu(id int) (*domain.Menu, error) {
	args := m.Called(id)
	var menu *domain.Menu
	if args.Get(0) != nil {
		menu = args.Get(0).(*domain.Menu)
	}
	return menu, args.Error(1)
}

func (m *MenuRepository) UpdateMenu(id int, fields map[string]interface{}) (*domain.Menu, error) {
	args := m.Called(id, fields)
	var menu *domain.Menu
	if args.Get(0) != nil {
		menu = args.Get(0).(*domain.Menu)
	}
	return menu, args.Error(1)
}

func (m *MenuRepository) DeleteMenu(id int) error {
	return m.Called(id).Error(0)
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) CreateUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepository) ListUsers(skip, limit int) ([]domain.User, error) {
	args := m.Called(skip, limit)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *UserRepository) GetUser(id int) (*domain.User, error) {
	args := m.Called(id)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *UserRepository) GetUserByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

func (m *UserRepository) UpdateUser(id int, fields map[string]interface{}) (*domain.User, error) {
	args := m.Called(id, fields)
	var u *domain.User
	if args.Get(0) != nil {
		u = args.Get(0).(*domain.User)
	}
	return u, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) PlaceOrder(order *domain.Order, lines []domain.OrderLine) error {
	return m.Called(order, lines).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	args := m.Called(id)
	var o *domain.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *OrderRepository) ListOrders(f domain.OrderFilter) ([]domain.OrderSummary, error) {
	args := m.Called(f)
	var summaries []domain.OrderSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]domain.OrderSummary)
	}
	return summaries, args.Error(1)
}

func (m *OrderRepository) UpdateOrder(id int, fields map[string]interface{}) (*domain.Order, error) {
	args := m.Called(id, fields)
	var o *domain.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*domain.Order)
	}
	return o, args.Error(1)
}

func (m *OrderRepository) DeleteOrder(id int) error {
	return m.Called(id).Error(0)
}

func (m *OrderRepository) ListOrdersBetween(from, to time.Time) ([]domain.Order, error) {
	args := m.Called(from, to)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

type MenuCacheStore struct {
	mock.Mock
}

func NewMenuCacheStore(t testingT) *MenuCacheStore {
	m := &MenuCacheStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCacheStore) GetMenu(ctx context.Context, id int) (*domain.Menu, bool) {
	args := m.Called(ctx, id)
	var menu *domain.Menu
	if args.Get(0) != nil {
		menu = args.Get(0).(*domain.Menu)
	}
	return menu, args.Bool(1)
}

func (m *MenuCacheStore) SetMenu(ctx context.Context, menu *domain.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MenuCacheStore) Invalidate(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type OrderEventPublisher struct {
	mock.Mock
}

func NewOrderEventPublisher(t testingT) *OrderEventPublisher {
	m := &OrderEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error {
	return m.Called(ctx, evt).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}
	return png, args.Error(1)
}
