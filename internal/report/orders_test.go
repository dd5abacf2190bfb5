package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"cafe-backend/internal/domain"
)

func TestRenderOrders(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	orders := []domain.Order{
		{
			ID: 1, CustomerName: "김민수", CustomerPhone: "010-1234-5678",
			Status: domain.StatusCompleted, TotalAmount: 9000, CreatedAt: created,
			Items: []domain.OrderItem{{MenuID: 1, Quantity: 2, Price: 4500, Subtotal: 9000}},
		},
		{
			ID: 2, CustomerName: "이서연", CustomerPhone: "010-8765-4321",
			Status: domain.StatusCancelled, TotalAmount: 5000, CreatedAt: created.Add(time.Hour),
			Items: []domain.OrderItem{{MenuID: 2, Quantity: 1, Price: 5000, Subtotal: 5000}},
		},
	}

	raw, err := RenderOrders(orders)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	assert.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Sheet1", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "김민수", name)

	status, err := f.GetCellValue("Sheet1", "D3")
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", status)

	total, err := f.GetCellValue("Sheet1", "F4")
	assert.NoError(t, err)
	assert.Equal(t, "14000", total)
}

func TestRenderOrdersEmpty(t *testing.T) {
	raw, err := RenderOrders(nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	assert.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Sheet1", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Total", label)
}
