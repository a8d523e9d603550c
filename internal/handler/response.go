package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/forgo/holocron/api/internal/model"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes the error envelope
func WriteError(w http.ResponseWriter, err *model.APIError) {
	err.WriteJSON(w)
}

// DecodeJSON reads a request body that must be a single JSON object and
// decodes it into v. Object keys must match v's json tags exactly; keys that
// differ only in case are ignored. The raw bytes are returned so create
// endpoints can echo them back unchanged.
func DecodeJSON(r *http.Request, v interface{}) (json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, model.NewBadRequestError("could not read request body")
	}
	if len(body) > maxBodyBytes {
		return nil, model.NewBadRequestError("request body too large")
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, model.NewBadRequestError("request body must be a JSON object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, model.NewBadRequestError("request body must be a JSON object")
	}
	exact, err := json.Marshal(exactFields(fields, v))
	if err != nil {
		return nil, model.NewBadRequestError("invalid request body")
	}

	if err := json.Unmarshal(exact, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, model.NewBadRequestError(
				fmt.Sprintf("%s must be a %s", typeErr.Field, jsonTypeName(typeErr.Type.Kind())))
		}
		return nil, model.NewBadRequestError("invalid request body")
	}

	return json.RawMessage(trimmed), nil
}

// exactFields keeps the entries of fields whose key is a json tag of the
// struct v points to.
func exactFields(fields map[string]json.RawMessage, v interface{}) map[string]json.RawMessage {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fields
	}

	kept := make(map[string]json.RawMessage, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if raw, ok := fields[name]; ok {
			kept[name] = raw
		}
	}
	return kept
}

func jsonTypeName(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "whole number"
	default:
		return kind.String()
	}
}
