package models

import (
	"encoding/json"
	"fmt"
)

// Row is one record exactly as the backend rendered it. The gateway forwards
// rows without interpreting their columns, so id types and extra columns of
// the backing table survive the round trip.
type Row = json.RawMessage

// RowsOf renders users as rows.
func RowsOf(users []User) ([]Row, error) {
	rows := make([]Row, 0, len(users))
	for i := range users {
		b, err := json.Marshal(&users[i])
		if err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
		rows = append(rows, b)
	}
	return rows, nil
}
