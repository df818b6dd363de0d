// Package gateway is the HTTP face of the service. It decodes requests,
// forwards them to the backend client and maps the outcome to a status code:
// 201/200 on success, 500 for every failure.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/usergate/internal/logging"
	"github.com/dmitrijs2005/usergate/internal/server/models"
)

// UsersCollection is the backend collection both routes operate on.
const UsersCollection = "users"

// sampleLimit caps GET /getUsers.
const sampleLimit = 1

// Store is the part of backend.Client the handlers use.
type Store interface {
	Insert(ctx context.Context, collection string, users []models.User) ([]models.Row, error)
	Select(ctx context.Context, collection string, limit int) ([]models.Row, error)
}

type Handler struct {
	store  Store
	logger logging.Logger
}

func NewHandler(s Store, l logging.Logger) *Handler {
	return &Handler{store: s, logger: l.With("module", "gateway")}
}

var errTrailingData = errors.New("invalid JSON: unexpected data after the request object")

type addUserRequest struct {
	Name *string `json:"name"`
	Mail *string `json:"mail"`
}

// decodeUser reads {name, mail}. Fields are not validated; an empty body
// counts as {} and absent fields stay nil. Anything after the object other
// than whitespace makes the body malformed.
func decodeUser(r *http.Request) Result[models.User] {
	var in addUserRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return Ok(models.User{})
		}
		return Fail[models.User](err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Fail[models.User](errTrailingData)
	}
	return Ok(models.User{Name: in.Name, Mail: in.Mail})
}

// AddUser handles POST /addUser.
func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := Then(decodeUser(r), func(u models.User) ([]models.Row, error) {
		return h.store.Insert(ctx, UsersCollection, []models.User{u})
	})

	if res.Failed() {
		h.logger.Error(ctx, "insert failed", "request_id", RequestID(ctx), "error", res.Err().Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: res.Err().Error()})
		return
	}

	writeJSON(w, http.StatusCreated, insertResponse{Message: MessageUserInserted, Data: orEmpty(res.Value())})
}

// GetUsers handles GET /getUsers.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := Capture(h.store.Select(ctx, UsersCollection, sampleLimit))

	if res.Failed() {
		h.logger.Error(ctx, "select failed", "request_id", RequestID(ctx), "error", res.Err().Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: MessageQueryFailed, Error: res.Err().Error()})
		return
	}

	writeJSON(w, http.StatusOK, sampleResponse{SampleUser: orEmpty(res.Value())})
}

// Ping handles GET /ping without touching the backend.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{Status: "OK"})
}
