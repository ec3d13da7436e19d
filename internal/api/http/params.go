package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/pricing"
)

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, &pricing.ValidationError{Field: "id", Value: raw, Reason: "must be a positive integer"}
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return 0, &pricing.ValidationError{Field: name, Value: raw, Reason: "must be a non-negative integer"}
	}
	return int32(v), nil
}

func pagination(r *http.Request) (int32, int32, error) {
	page, err := queryInt32(r, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := queryInt32(r, "page_size")
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		page = 1
	}
	return page, size, nil
}
