package tests

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/storage"
)

func setupRepository(t *testing.T) (sqlmock.Sqlmock, *storage.PostgresRepository) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return mock, storage.NewPostgresRepository(db)
}

func menuRows(menus ...domain.Menu) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "category_id", "price", "description", "image_url", "is_available"})
	for _, m := range menus {
		rows.AddRow(m.ID, m.Name, m.CategoryID, m.Price, m.Description, m.ImageURL, m.IsAvailable)
	}
	return rows
}

func TestCreateCategoryRejectsDuplicateBeforeInsert(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.CreateCategory(&domain.Category{Name: "커피"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategoryInserts(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	category := &domain.Category{Name: "디저트", DisplayOrder: 3}
	err := repo.CreateCategory(category)

	assert.NoError(t, err)
	assert.Equal(t, 3, category.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategoryNotFound(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "display_order"}))

	category, err := repo.GetCategory(999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, category)
}

func TestDeleteMenuRestrictedWhenReferenced(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	err := repo.DeleteMenu(5)

	assert.ErrorIs(t, err, domain.ErrMenuInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuNotFound(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM "menus"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMenu(999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrderSnapshotsPricesAndTotals(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(
			domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: true},
			domain.Menu{ID: 2, Name: "카페라떼", CategoryID: 1, Price: 5000, IsAvailable: true},
		))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
	mock.ExpectCommit()

	order := &domain.Order{CustomerName: "김민수", CustomerPhone: "010-1234-5678"}
	err := repo.PlaceOrder(order, []domain.OrderLine{
		{MenuID: 1, Quantity: 2, Options: "샷 추가"},
		{MenuID: 2, Quantity: 1},
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 2*4500+5000, order.TotalAmount)
	assert.Equal(t, 4500, order.Items[0].Price)
	assert.Equal(t, 9000, order.Items[0].Subtotal)
	assert.Equal(t, 5000, order.Items[1].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderUnknownMenuWritesNothing(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(
			domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: true},
		))
	mock.ExpectRollback()

	order := &domain.Order{CustomerName: "김민수", CustomerPhone: "010-1234-5678"}
	err := repo.PlaceOrder(order, []domain.OrderLine{
		{MenuID: 1, Quantity: 1},
		{MenuID: 999, Quantity: 1},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderUnavailableMenuWritesNothing(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(
			domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: false},
		))
	mock.ExpectRollback()

	order := &domain.Order{CustomerName: "김민수", CustomerPhone: "010-1234-5678"}
	err := repo.PlaceOrder(order, []domain.OrderLine{{MenuID: 1, Quantity: 1}})

	assert.True(t, domain.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemPriceSurvivesMenuPriceChange(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: true}))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	order := &domain.Order{CustomerName: "김민수", CustomerPhone: "010-1234-5678"}
	err := repo.PlaceOrder(order, []domain.OrderLine{{MenuID: 1, Quantity: 2}})
	assert.NoError(t, err)
	assert.Equal(t, 4500, order.Items[0].Price)

	// the menu price goes up after the order was placed
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: true}))
	mock.ExpectExec(`UPDATE "menus" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 5500, IsAvailable: true}))
	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "display_order"}).AddRow(1, "커피", 1))

	menu, err := repo.UpdateMenu(1, map[string]interface{}{"price": 5500})
	assert.NoError(t, err)
	assert.Equal(t, 5500, menu.Price)

	// re-reading the order serves the captured price from order_items, not the
	// current menu price
	mock.ExpectQuery(`SELECT \* FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "status", "customer_name", "customer_phone"}).
			AddRow(7, 9000, "pending", "김민수", "010-1234-5678"))
	mock.ExpectQuery(`SELECT \* FROM "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_id", "quantity", "price", "subtotal", "options"}).
			AddRow(11, 7, 1, 2, 4500, 9000, ""))
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 5500, IsAvailable: true}))

	got, err := repo.GetOrder(7)
	assert.NoError(t, err)
	assert.Equal(t, 4500, got.Items[0].Price)
	assert.Equal(t, 9000, got.Items[0].Subtotal)
	assert.Equal(t, 9000, got.TotalAmount)
	assert.Equal(t, 5500, got.Items[0].Menu.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMenuTouchesOnlyGivenFields(t *testing.T) {
	mock, repo := setupRepository(t)

	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(domain.Menu{ID: 5, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: true}))
	mock.ExpectExec(`UPDATE "menus" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "menus"`).
		WillReturnRows(menuRows(domain.Menu{ID: 5, Name: "아메리카노", CategoryID: 1, Price: 4800, IsAvailable: true}))
	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "display_order"}).AddRow(1, "커피", 1))

	menu, err := repo.UpdateMenu(5, map[string]interface{}{"price": 4800})

	assert.NoError(t, err)
	assert.Equal(t, 4800, menu.Price)
	assert.Equal(t, "아메리카노", menu.Name)
	assert.Equal(t, "커피", menu.Category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
