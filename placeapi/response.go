package placeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is a fully read HTTP response from the service.
type Response struct {
	StatusCode int
	Header     http.Header
	Cookies    []*http.Cookie
	Body       []byte
	RequestID  string
	ReceivedAt time.Time
}

// PlaceRecord is the body of a successful create-favorite response.
type PlaceRecord struct {
	ID        ldvalue.Value          `json:"id"`
	Title     string                 `json:"title"`
	Lat       float64                `json:"lat"`
	Lon       float64                `json:"lon"`
	Color     ldvalue.OptionalString `json:"color"`
	CreatedAt string                 `json:"created_at"`
}

func (r *Response) String() string {
	return fmt.Sprintf("HTTP %d %s", r.StatusCode, string(r.Body))
}

// Field looks up a value in the JSON body by gjson path.
func (r *Response) Field(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// ErrorMessage returns error.message from an error body.
func (r *Response) ErrorMessage() (string, bool) {
	m := r.Field("error.message")
	if !m.Exists() || m.Type != gjson.String {
		return "", false
	}
	return m.String(), true
}

// Record decodes a successful response body.
func (r *Response) Record() (PlaceRecord, error) {
	var rec PlaceRecord
	if !gjson.ValidBytes(r.Body) {
		return rec, fmt.Errorf("response body is not valid JSON: %q", string(r.Body))
	}
	if err := json.Unmarshal(r.Body, &rec); err != nil {
		return rec, fmt.Errorf("malformed place record %s: %w", string(r.Body), err)
	}
	return rec, nil
}
