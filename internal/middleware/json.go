package middleware

import (
	"encoding/json"
	"net/http"
)

func jsonEncode(w http.ResponseWriter, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
