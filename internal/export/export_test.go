package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joacia/laundry-service/internal/model"
)

func TestOrdersWorkbook(t *testing.T) {
	orders := []model.Order{
		{
			ID:            "1001",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			ServiceType:   model.ServiceWashFold,
			Quantity:      5,
			Total:         12.5,
			Status:        model.OrderInProgress,
			CreatedAt:     time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := Orders(&buf, orders); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "Order ID" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "John Doe" || rows[1][3] != "wash-fold" {
		t.Errorf("unexpected data row: %v", rows[1])
	}
}
