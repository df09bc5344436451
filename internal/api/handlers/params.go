package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathInt64 читает положительный int64 из переменной пути
func PathInt64(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("path %s: %w", name, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("path %s: must be positive", name)
	}
	return value, nil
}

// QueryInt читает необязательный int из query; пустое значение - def
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", name, err)
	}
	return value, nil
}

// QueryString возвращает указатель на значение query или nil, если параметра нет
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
