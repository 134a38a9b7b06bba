package types

const (
	TransactionIn  = "IN"
	TransactionOut = "OUT"
)

// TransactionEntry is a stock movement to be recorded.
// Date is stored verbatim and is not validated as a calendar date.
type TransactionEntry struct {
	ItemID   int64   `db:"item_id"`
	Type     string  `db:"transaction_type"`
	Quantity int     `db:"quantity"`
	Date     string  `db:"date"`
	Notes    *string `db:"notes"`
}

// Transaction is a recorded stock movement joined with the name of its item.
type Transaction struct {
	ID       int64   `json:"id" db:"id"`
	ItemID   *int64  `json:"item_id" db:"item_id"`
	Type     string  `json:"transaction_type" db:"transaction_type"`
	Quantity int     `json:"quantity" db:"quantity"`
	Date     string  `json:"date" db:"date"`
	Notes    *string `json:"notes" db:"notes"`

	// ItemName is nil when the referenced item no longer exists.
	ItemName *string `json:"item_name" db:"item_name"`
}

// IsValidTransactionType reports whether t is IN or OUT.
func IsValidTransactionType(t string) bool {
	return t == TransactionIn || t == TransactionOut
}
