// Package models holds the records exchanged between the gateway and the
// backend clients.
package models

// User is a row of the users collection. ID and CreatedAt are assigned by the
// backend and omitted when a record is sent for insertion. Name and Mail are
// pointers so that a field absent from the request reaches the backend as
// null instead of an empty string.
type User struct {
	ID        int64      `json:"id,omitempty"`
	Name      *string    `json:"name"`
	Mail      *string    `json:"mail"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}
