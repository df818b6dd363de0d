package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/usergate/internal/server/models"
)

const (
	MessageUserInserted = "✅ User inserted successfully!"
	MessageQueryFailed  = "❌ Supabase query failed"
)

type insertResponse struct {
	Message string       `json:"message"`
	Data    []models.Row `json:"data"`
}

type sampleResponse struct {
	SampleUser []models.Row `json:"sampleUser"`
}

type errorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error"`
}

type pingResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// orEmpty keeps JSON arrays from being encoded as null.
func orEmpty(rows []models.Row) []models.Row {
	if rows == nil {
		return []models.Row{}
	}
	return rows
}
