package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
)

// emptyJSONArray is written for nil slices so list endpoints always answer
// with an array, never with null.
var emptyJSONArray = []byte("[]")

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "application/json" Content-Type.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, clients, http.StatusOK)
//	WriteJSON(w, createdAccount, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var jsonData []byte
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice && v.IsNil() {
		jsonData = emptyJSONArray
	} else {
		var err error
		if jsonData, err = json.Marshal(data); err != nil {
			http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
			return 0, fmt.Errorf("error writing data to JSON: %w", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
