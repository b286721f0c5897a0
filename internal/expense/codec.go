package expense

import (
	"encoding/json"
	"fmt"
	"time"
)

// record is the serialized form of an Expense. Dates are day strings,
// timestamps RFC 3339, so the blob stays readable and diffable.
type record struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
}

// MarshalCollection serializes the full collection, preserving order.
func MarshalCollection(expenses []Expense) ([]byte, error) {
	records := make([]record, len(expenses))
	for i, exp := range expenses {
		records[i] = record{
			ID:        exp.ID,
			Name:      exp.Name,
			Amount:    exp.Amount,
			Category:  exp.Category,
			Date:      exp.Date.Format(DateLayout),
			Timestamp: exp.Timestamp.Format(time.RFC3339Nano),
		}
	}
	return json.Marshal(records)
}

// UnmarshalCollection restores a collection serialized by MarshalCollection.
func UnmarshalCollection(data []byte) ([]Expense, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode expense collection: %w", err)
	}

	expenses := make([]Expense, len(records))
	for i, r := range records {
		date, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date of expense %d: %w", r.ID, err)
		}
		timestamp, err := time.Parse(time.RFC3339Nano, r.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp of expense %d: %w", r.ID, err)
		}
		expenses[i] = Expense{
			ID:        r.ID,
			Name:      r.Name,
			Amount:    r.Amount,
			Category:  r.Category,
			Date:      date,
			Timestamp: timestamp,
		}
	}
	return expenses, nil
}
