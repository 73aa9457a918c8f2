package models

// Transaction is a finance entry parsed from an uploaded CSV file.
// Transactions are returned to the caller; they are never stored.
type Transaction struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
