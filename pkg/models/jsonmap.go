package models

import (
	"encoding/json"
	"fmt"
)

// The persistence layer stores loosely-typed JSON bags (map[string]any
// columns). The typed records in this package cross that boundary through a
// JSON round-trip: numbers arrive as float64, lists as []any, and the
// round-trip normalizes them into the record's declared field types.

// structToMap converts a typed record into the generic map shape stored in a
// JSON column. Fields tagged omitempty vanish when zero, so bags stay sparse.
func structToMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		// Records here contain only JSON-encodable fields.
		panic(fmt.Sprintf("models: marshal %T: %v", v, err))
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		panic(fmt.Sprintf("models: unmarshal %T: %v", v, err))
	}
	if len(m) == 0 {
		return map[string]any{}
	}
	return m
}

// mapToStruct decodes a JSON bag into a typed record. Unknown keys are
// ignored so older rows with extra fields keep parsing.
func mapToStruct(raw map[string]any, out any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}
	return nil
}
