// internal/utils/csv.go
package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

// Exports carry a UTF-8 BOM so spreadsheets open the Chinese item names
// correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}

// readCSV parses header-keyed rows. Short rows are tolerated: missing columns
// simply stay absent from the row map.
func readCSV(data []byte) ([]map[string]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i >= len(record) {
				break
			}
			row[strings.TrimSpace(header)] = strings.TrimSpace(record[i])
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func OrdersToCSV(orders []models.Order) ([]byte, error) {
	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		items := make([]string, 0, len(order.Lines))
		for _, line := range order.Lines {
			items = append(items, fmt.Sprintf("%sx%d", line.Name, line.Quantity))
		}
		rows = append(rows, []string{
			order.ID,
			strings.Join(items, "; "),
			strconv.FormatFloat(order.Total, 'f', -1, 64),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
			string(order.Status),
		})
	}

	return writeCSV([]string{"id", "items", "total", "created_at", "status"}, rows)
}

func InventoryToCSV(items []models.InventoryItem) ([]byte, error) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			item.Unit,
			string(item.Status),
			item.LastUpdated,
		})
	}

	return writeCSV([]string{"id", "name", "quantity", "unit", "status", "last_updated"}, rows)
}

// InventoryFromCSV deserializes imported rows. Missing columns leave the
// corresponding field unset; an unknown status defaults to normal.
func InventoryFromCSV(data []byte) ([]models.InventoryItem, error) {
	rows, err := readCSV(data)
	if err != nil {
		return nil, err
	}

	items := make([]models.InventoryItem, 0, len(rows))
	for _, row := range rows {
		item := models.InventoryItem{
			ID:          row["id"],
			Name:        row["name"],
			Unit:        row["unit"],
			LastUpdated: row["last_updated"],
		}

		if qty, err := strconv.ParseFloat(row["quantity"], 64); err == nil {
			item.Quantity = qty
		}

		switch models.InventoryStatus(row["status"]) {
		case models.InventoryStatusWarning:
			item.Status = models.InventoryStatusWarning
		case models.InventoryStatusCritical:
			item.Status = models.InventoryStatusCritical
		default:
			item.Status = models.InventoryStatusNormal
		}

		items = append(items, item)
	}

	return items, nil
}
