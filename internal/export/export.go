// Package export renders record collections as Excel workbooks for
// download from the admin dashboard.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/joacia/laundry-service/internal/model"
)

const ordersSheet = "Orders"

// Orders writes an xlsx workbook listing every order to w, one row
// per order with a bold header row.
func Orders(w io.Writer, orders []model.Order) error {
	f := excelize.NewFile()

	index, err := f.NewSheet(ordersSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Order ID", "Customer", "Email", "Service", "Quantity", "Total", "Status", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ordersSheet, cell, h)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(ordersSheet, first, last, style)
	}

	for i, o := range orders {
		row := i + 2
		f.SetCellValue(ordersSheet, fmt.Sprintf("A%d", row), o.ID)
		f.SetCellValue(ordersSheet, fmt.Sprintf("B%d", row), o.CustomerName)
		f.SetCellValue(ordersSheet, fmt.Sprintf("C%d", row), o.CustomerEmail)
		f.SetCellValue(ordersSheet, fmt.Sprintf("D%d", row), o.ServiceType)
		f.SetCellValue(ordersSheet, fmt.Sprintf("E%d", row), o.Quantity)
		f.SetCellValue(ordersSheet, fmt.Sprintf("F%d", row), o.Total)
		f.SetCellValue(ordersSheet, fmt.Sprintf("G%d", row), o.Status)
		f.SetCellValue(ordersSheet, fmt.Sprintf("H%d", row), o.CreatedAt.Format("2006-01-02 15:04"))
	}

	f.SetColWidth(ordersSheet, "A", "A", 14)
	f.SetColWidth(ordersSheet, "B", "C", 24)
	f.SetColWidth(ordersSheet, "D", "D", 14)
	f.SetColWidth(ordersSheet, "E", "G", 10)
	f.SetColWidth(ordersSheet, "H", "H", 18)

	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
