package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	perr "veritas/internal/platform/errors"
	"veritas/internal/platform/logger"
)

// JSONOptions controls ParseJSON
type JSONOptions struct {
	MaxBytes        int64 // zero or negative reads the whole body
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// Defaults caps bodies at 1MB and rejects unknown fields
func Defaults() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// Unbounded is Defaults without the size cap
func Unbounded() JSONOptions {
	o := Defaults()
	o.MaxBytes = 0
	return o
}

// bodyless methods may send nothing even when AllowEmptyBody is off
var bodyless = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// ParseJSON decodes one JSON value from the body into T and validates it.
// Decode failures are ErrorCodeJSON, validation failures ErrorCodeValidation.
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero, dst T
	o := Defaults()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}
	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(&dst); err != nil {
		if !errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
		if o.AllowEmptyBody || bodyless[r.Method] {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// QueryInt reads an integer query parameter, def when absent
func QueryInt(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.Validationf(name, "%s must be an integer", name)
	}
	return n, nil
}
