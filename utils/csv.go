package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DanielJacob1998/capstone/models"
)

// MaxUploadSize caps uploaded file bodies (CSV and ICS alike).
const MaxUploadSize = 5 << 20 // 5 MB

// FinanceResult is the batch outcome of a finance CSV upload: parsed
// transactions plus one RowError per rejected row.
type FinanceResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Errors       []RowError           `json:"errors"`
}

// ParseFinanceCSV reads finance transactions from r. Expected columns:
// date (YYYY-MM-DD), amount, category, description. A leading header
// row is detected and skipped. A bad row is reported in Errors and
// never aborts the batch; only an unreadable stream returns an error.
func ParseFinanceCSV(r io.Reader) (FinanceResult, error) {
	result := FinanceResult{
		Transactions: []models.Transaction{},
		Errors:       []RowError{},
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("read csv: %w", err)
		}
		row++
		if row == 1 && isFinanceHeader(record) {
			continue
		}
		tx, perr := parseFinanceRow(record)
		if perr != nil {
			result.Errors = append(result.Errors, RowError{
				Index: row,
				Input: strings.Join(record, ","),
				Error: perr.Error(),
			})
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}

func isFinanceHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date")
}

func parseFinanceRow(record []string) (models.Transaction, error) {
	var tx models.Transaction
	if len(record) < 3 {
		return tx, fmt.Errorf("expected at least 3 columns (date, amount, category), got %d", len(record))
	}

	date := strings.TrimSpace(record[0])
	if _, err := models.ParseDate(date); err != nil {
		return tx, fmt.Errorf("invalid date %q, use YYYY-MM-DD", date)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return tx, fmt.Errorf("invalid amount %q", record[1])
	}
	category := strings.TrimSpace(record[2])
	if category == "" {
		return tx, fmt.Errorf("category is required")
	}

	tx.Date = date
	tx.Amount = amount
	tx.Category = category
	if len(record) > 3 {
		tx.Description = strings.TrimSpace(record[3])
	}
	return tx, nil
}
