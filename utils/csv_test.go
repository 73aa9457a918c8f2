package utils

import (
	"strings"
	"testing"
)

func TestParseFinanceCSV_ValidRows(t *testing.T) {
	csv := `Date,Amount,Category,Description
2024-01-05,120.50,groceries,weekly shop
2024-01-06,-42.00,refund,returned jacket
2024-01-07,9.99,subscriptions,`

	result, err := ParseFinanceCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseFinanceCSV() error = %v", err)
	}

	if len(result.Errors) != 0 {
		t.Errorf("unexpected row errors: %v", result.Errors)
	}
	if len(result.Transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(result.Transactions))
	}

	tx := result.Transactions[0]
	if tx.Date != "2024-01-05" {
		t.Errorf("date = %q, want %q", tx.Date, "2024-01-05")
	}
	if tx.Amount != 120.50 {
		t.Errorf("amount = %v, want 120.50", tx.Amount)
	}
	if tx.Category != "groceries" {
		t.Errorf("category = %q, want %q", tx.Category, "groceries")
	}
	if tx.Description != "weekly shop" {
		t.Errorf("description = %q, want %q", tx.Description, "weekly shop")
	}
}

func TestParseFinanceCSV_NoHeader(t *testing.T) {
	csv := `2024-02-01,10.00,food,lunch`

	result, err := ParseFinanceCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseFinanceCSV() error = %v", err)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(result.Transactions))
	}
}

func TestParseFinanceCSV_BadRowsAreIsolated(t *testing.T) {
	csv := `date,amount,category,description
2024-03-01,50.00,rent,march
03/02/2024,20.00,food,bad date
2024-03-03,twenty,food,bad amount
2024-03-04,15.00,,missing category
2024-03-05
2024-03-06,30.00,transport,ok`

	result, err := ParseFinanceCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseFinanceCSV() error = %v", err)
	}

	if len(result.Transactions) != 2 {
		t.Errorf("got %d transactions, want 2", len(result.Transactions))
	}
	if len(result.Errors) != 4 {
		t.Fatalf("got %d row errors, want 4: %v", len(result.Errors), result.Errors)
	}

	// Rows are 1-based including the header line.
	wantRows := []int{3, 4, 5, 6}
	for i, re := range result.Errors {
		if re.Index != wantRows[i] {
			t.Errorf("error %d row = %d, want %d", i, re.Index, wantRows[i])
		}
		if re.Input == "" || re.Error == "" {
			t.Errorf("error %d must carry input and message: %+v", i, re)
		}
	}
}

func TestParseFinanceCSV_Empty(t *testing.T) {
	result, err := ParseFinanceCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseFinanceCSV() error = %v", err)
	}
	if len(result.Transactions) != 0 || len(result.Errors) != 0 {
		t.Errorf("empty input must produce empty result, got %+v", result)
	}
}
