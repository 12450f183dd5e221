package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// IDField is the record field used as the stable rendering key of an Item
const IDField = "id"

// Category identifies a filterable group of plants.
// The API returns categories as {"Category": "<name>"} records.
type Category struct {
	Name string `json:"Category" yaml:"category"`
}

// Item is an opaque catalog record. Only ID is interpreted; Fields holds
// the full record (including "id") exactly as the API returned it, with
// numbers kept as json.Number.
type Item struct {
	ID     string
	Fields map[string]any
}

// Field returns a raw field value from the record
func (i Item) Field(name string) (any, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// MarshalJSON emits the original record
func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Fields)
}

// MarshalYAML emits the original record with json.Number values converted
// to plain numbers so they are not quoted.
func (i Item) MarshalYAML() (interface{}, error) {
	return plainValue(i.Fields), nil
}

type categoryRecord struct {
	Category *string `json:"Category"`
}

// ParseCategories decodes a category list payload.
// The payload must be a JSON array whose records each carry a string "Category".
func ParseCategories(body []byte) ([]Category, error) {
	var records []*categoryRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, NewParseError("failed to parse category list", err)
	}
	if records == nil {
		return nil, NewParseError("category list is not a JSON array", nil)
	}

	categories := make([]Category, 0, len(records))
	for i, rec := range records {
		if rec == nil || rec.Category == nil {
			return nil, NewParseError(fmt.Sprintf("category record %d has no Category field", i), nil)
		}
		categories = append(categories, Category{Name: *rec.Category})
	}
	return categories, nil
}

// ParseItems decodes an item list payload.
// The payload must be a JSON array of objects, each with a non-empty
// string or numeric "id".
func ParseItems(body []byte) ([]Item, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, NewParseError("failed to parse plant list", err)
	}
	if records == nil {
		return nil, NewParseError("plant list is not a JSON array", nil)
	}

	items := make([]Item, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, NewParseError(fmt.Sprintf("plant record %d is null", i), nil)
		}
		id, err := recordID(rec)
		if err != nil {
			return nil, NewParseError(fmt.Sprintf("plant record %d", i), err)
		}
		items = append(items, Item{ID: id, Fields: rec})
	}
	return items, nil
}

func recordID(rec map[string]any) (string, error) {
	raw, ok := rec[IDField]
	if !ok {
		return "", fmt.Errorf("missing %q field", IDField)
	}

	var id string
	switch v := raw.(type) {
	case string:
		id = v
	case json.Number:
		id = v.String()
	default:
		return "", fmt.Errorf("%q field has unsupported type %T", IDField, raw)
	}

	if id == "" {
		return "", fmt.Errorf("%q field is empty", IDField)
	}
	return id, nil
}

func plainValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainValue(val)
		}
		return out
	default:
		return v
	}
}
