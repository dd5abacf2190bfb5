package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cafe-backend/internal/domain"
)

const sheet = "Sheet1"

var header = []string{"Order ID", "Customer", "Phone", "Status", "Items", "Total Amount", "Created At"}

// RenderOrders writes one row per order plus a grand total into an xlsx
// workbook and returns the serialized file.
func RenderOrders(orders []domain.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	grandTotal := 0
	for i, order := range orders {
		row := i + 2
		values := []interface{}{
			order.ID,
			order.CustomerName,
			order.CustomerPhone,
			string(order.Status),
			len(order.Items),
			order.TotalAmount,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		grandTotal += order.TotalAmount
	}

	totalRow := len(orders) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), grandTotal); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
