package service

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrNoIngredients is returned when every ingredient token is empty
	ErrNoIngredients = errors.New("at least one ingredient is required")
	// ErrInvalidRecipeID is returned for ids the upstream API can never know
	ErrInvalidRecipeID = errors.New("invalid recipe id")

	ErrTransport  = errors.New("transport error")
	ErrHTTPStatus = errors.New("unexpected http status")
	ErrParse      = errors.New("unexpected response body")
)

// ErrorKind classifies a failed call to the recipe API
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindHTTPStatus
	KindParse
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindHTTPStatus:
		return ErrHTTPStatus
	case KindParse:
		return ErrParse
	default:
		return ErrTransport
	}
}

// RecipeAPIError is returned by every failed call to the recipe API
type RecipeAPIError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Err        error
}

func (e *RecipeAPIError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *RecipeAPIError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels
func (e *RecipeAPIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func transportError(op string, err error) *RecipeAPIError {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		// the request URL carries the API key
		err = &url.Error{Op: uerr.Op, URL: redactKey(uerr.URL), Err: uerr.Err}
	}
	return &RecipeAPIError{Kind: KindTransport, Op: op, Err: err}
}

func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("apiKey") {
		q.Set("apiKey", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
