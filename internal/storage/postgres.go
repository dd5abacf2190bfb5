package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cafe-backend/internal/domain"
)

type PostgresRepository struct {
	DB *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) AutoMigrate() error {
	return r.DB.AutoMigrate(
		&domain.Category{},
		&domain.Menu{},
		&domain.User{},
		&domain.Order{},
		&domain.OrderItem{},
	)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// ---- categories ----

func (r *PostgresRepository) CreateCategory(c *domain.Category) error {
	var n int64
	if err := r.DB.Model(&domain.Category{}).Where("name = ?", c.Name).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("category %q: %w", c.Name, domain.ErrDuplicate)
	}
	return r.DB.Create(c).Error
}

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.DB.Order("display_order, id").Find(&categories).Error
	return categories, err
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var c domain.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(id int, fields map[string]interface{}) (*domain.Category, error) {
	var c domain.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	if name, ok := fields["name"]; ok {
		var n int64
		if err := r.DB.Model(&domain.Category{}).Where("name = ? AND id <> ?", name, id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("category %v: %w", name, domain.ErrDuplicate)
		}
	}
	if len(fields) > 0 {
		if err := r.DB.Model(&c).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (r *PostgresRepository) CategoryExists(id int) (bool, error) {
	var n int64
	err := r.DB.Model(&domain.Category{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// ---- menus ----

func (r *PostgresRepository) CreateMenu(m *domain.Menu) error {
	exists, err := r.CategoryExists(m.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("category %d: %w", m.CategoryID, domain.ErrInvalidReference)
	}
	if err := r.DB.Create(m).Error; err != nil {
		return err
	}
	return r.DB.Preload("Category").First(m, m.ID).Error
}

func (r *PostgresRepository) ListMenus(f domain.MenuFilter) ([]domain.Menu, error) {
	q := r.DB.Preload("Category")
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	var menus []domain.Menu
	err := q.Order("id").Offset(f.Skip).Limit(f.Limit).Find(&menus).Error
	return menus, err
}

func (r *PostgresRepository) GetMenu(id int) (*domain.Menu, error) {
	var m domain.Menu
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (r *PostgresRepository) UpdateMenu(id int, fields map[string]interface{}) (*domain.Menu, error) {
	var m domain.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	if categoryID, ok := fields["category_id"]; ok {
		var n int64
		if err := r.DB.Model(&domain.Category{}).Where("id = ?", categoryID).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, fmt.Errorf("category %v: %w", categoryID, domain.ErrInvalidReference)
		}
	}
	if len(fields) > 0 {
		if err := r.DB.Model(&m).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetMenu(id)
}

// DeleteMenu refuses to remove a menu referenced by historical order items so
// billing records keep their join target.
func (r *PostgresRepository) DeleteMenu(id int) error {
	var refs int64
	if err := r.DB.Model(&domain.OrderItem{}).Where("menu_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("menu %d: %w", id, domain.ErrMenuInUse)
	}
	res := r.DB.Delete(&domain.Menu{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ---- users ----

func (r *PostgresRepository) CreateUser(u *domain.User) error {
	var n int64
	err := r.DB.Model(&domain.User{}).
		Where("username = ? OR email = ?", u.Username, u.Email).Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("username or email: %w", domain.ErrDuplicate)
	}
	return r.DB.Create(u).Error
}

func (r *PostgresRepository) ListUsers(skip, limit int) ([]domain.User, error) {
	var users []domain.User
	err := r.DB.Order("id").Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

func (r *PostgresRepository) GetUser(id int) (*domain.User, error) {
	var u domain.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByUsername(username string) (*domain.User, error) {
	var u domain.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PostgresRepository) UpdateUser(id int, fields map[string]interface{}) (*domain.User, error) {
	var u domain.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	if username, ok := fields["username"]; ok {
		var n int64
		if err := r.DB.Model(&domain.User{}).Where("username = ? AND id <> ?", username, id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("username %v: %w", username, domain.ErrDuplicate)
		}
	}
	if email, ok := fields["email"]; ok {
		var n int64
		if err := r.DB.Model(&domain.User{}).Where("email = ? AND id <> ?", email, id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("email %v: %w", email, domain.ErrDuplicate)
		}
	}
	if len(fields) > 0 {
		if err := r.DB.Model(&u).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &u, nil
}

// ---- orders ----

// PlaceOrder resolves every line against the live menus table, snapshots the
// current price into each item, computes the total and writes the order plus
// its items as one transaction. Nothing is written if any line fails.
func (r *PostgresRepository) PlaceOrder(order *domain.Order, lines []domain.OrderLine) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		ids := make([]int, 0, len(lines))
		seen := make(map[int]bool, len(lines))
		for _, line := range lines {
			if !seen[line.MenuID] {
				seen[line.MenuID] = true
				ids = append(ids, line.MenuID)
			}
		}

		var menus []domain.Menu
		if err := tx.Where("id IN ?", ids).Find(&menus).Error; err != nil {
			return err
		}
		byID := make(map[int]domain.Menu, len(menus))
		for _, m := range menus {
			byID[m.ID] = m
		}

		total := 0
		items := make([]domain.OrderItem, len(lines))
		for i, line := range lines {
			menu, ok := byID[line.MenuID]
			if !ok {
				return fmt.Errorf("menu %d: %w", line.MenuID, domain.ErrInvalidReference)
			}
			if !menu.IsAvailable {
				return domain.Invalid("items", fmt.Sprintf("menu %d is not available", line.MenuID))
			}
			subtotal := menu.Price * line.Quantity
			items[i] = domain.OrderItem{
				MenuID:   line.MenuID,
				Quantity: line.Quantity,
				Price:    menu.Price,
				Subtotal: subtotal,
				Options:  line.Options,
			}
			total += subtotal
		}

		order.Status = domain.StatusPending
		order.TotalAmount = total
		order.Items = items
		return tx.Create(order).Error
	})
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var o domain.Order
	err := r.DB.Preload("Items").Preload("Items.Menu").First(&o, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *PostgresRepository) ListOrders(f domain.OrderFilter) ([]domain.OrderSummary, error) {
	q := r.DB.Model(&domain.Order{}).
		Select("orders.id, orders.customer_name, orders.customer_phone, orders.total_amount, orders.status, orders.created_at, COUNT(order_items.id) AS item_count").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Group("orders.id")
	if f.Status != nil {
		q = q.Where("orders.status = ?", *f.Status)
	}
	var summaries []domain.OrderSummary
	err := q.Order("orders.created_at DESC").Offset(f.Skip).Limit(f.Limit).Scan(&summaries).Error
	return summaries, err
}

func (r *PostgresRepository) UpdateOrder(id int, fields map[string]interface{}) (*domain.Order, error) {
	var o domain.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, notFound(err)
	}
	if len(fields) > 0 {
		if err := r.DB.Model(&o).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetOrder(id)
}

func (r *PostgresRepository) DeleteOrder(id int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *PostgresRepository) ListOrdersBetween(from, to time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.DB.Preload("Items").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at").
		Find(&orders).Error
	return orders, err
}
