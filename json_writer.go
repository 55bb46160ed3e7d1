package fliplog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key/value pair to the JSON object being built.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valueJSON, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(&w.Buffer, "%q:%s,", key, valueJSON)
	return w
}

// Optional adds a key/value pair only if the string value is non-empty.
func (w *jsonObjectWriter) Optional(key, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(key, value)
}

// OptionalDate adds a key/date pair only if the date is set.
func (w *jsonObjectWriter) OptionalDate(key string, value Date) *jsonObjectWriter {
	if value.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Amount adds a money amount as a plain number, without its currency.
func (w *jsonObjectWriter) Amount(key string, value Money) *jsonObjectWriter {
	return w.Append(key, value.Amount())
}

// OptionalAmount adds a money amount only if it is present.
func (w *jsonObjectWriter) OptionalAmount(key string, value *Money) *jsonObjectWriter {
	if value == nil {
		return w
	}
	return w.Amount(key, *value)
}

// MarshalJSON terminates the object and returns its bytes.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	b := w.Bytes()
	// strip the trailing comma
	if n := len(b); n > 0 && b[n-1] == ',' {
		b = b[:n-1]
	}
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(b)
	out.WriteByte('}')
	return out.Bytes(), nil
}
