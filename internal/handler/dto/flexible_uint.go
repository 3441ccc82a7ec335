package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleUint - неотрицательное целое, которое в JSON может прийти числом или строкой.
// Фронтенд берет ID категорий из ключей объекта categories, поэтому присылает их строками ("2").
// JSON null и пустая строка дают 0.
type FlexibleUint uint

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleUint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %s", string(data))
	}
	*f = FlexibleUint(v)
	return nil
}

// Uint возвращает значение как uint
func (f FlexibleUint) Uint() uint {
	return uint(f)
}
