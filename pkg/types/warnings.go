package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tiendahub/storefront-backend/pkg/enums"
)

// MarginWarning captures a non-blocking margin advisory surfaced to the caller.
type MarginWarning struct {
	Type    enums.MarginWarningType `json:"type"`
	Message string                  `json:"message"`
}

// MarginWarnings is a slice marshaled as JSONB.
type MarginWarnings []MarginWarning

// Value serializes the warnings to JSON.
func (m MarginWarnings) Value() (driver.Value, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m)
}

// Scan decodes JSONB into the warning slice.
func (m *MarginWarnings) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded MarginWarnings
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*m = decoded
	return nil
}

// ComboWarning captures a data-quality advisory attached to a priced combo.
type ComboWarning struct {
	Type    enums.ComboWarningType `json:"type"`
	Message string                 `json:"message"`
}

// ComboWarnings is a slice marshaled as JSONB.
type ComboWarnings []ComboWarning

// Value serializes the combo warnings to JSON.
func (c ComboWarnings) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan decodes JSONB into the warning slice.
func (c *ComboWarnings) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded ComboWarnings
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*c = decoded
	return nil
}

func asJSON(value interface{}) ([]byte, error) {
	switch typed := value.(type) {
	case []byte:
		return typed, nil
	case string:
		return []byte(typed), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type %T", value)
	}
}
