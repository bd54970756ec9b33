package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/PEEKING-web/steam-tracker/internal/validation"
)

const maxBodyBytes = 64 << 10

var errBadBody = errors.New("invalid JSON body")

// decodeBody reads a JSON body into dst and validates it. An empty body
// leaves dst at its zero value before validation.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return validation.Struct(dst)
}

// pathInt parses a positive integer path value.
func pathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}
