package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SkillList stores an ordered list of skill names as a JSON-encoded text column.
type SkillList []string

func (s SkillList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skill list: %w", err)
	}
	return string(b), nil
}

func (s *SkillList) Scan(value interface{}) error {
	if value == nil {
		*s = SkillList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported skill list column type %T", value)
	}

	if len(data) == 0 {
		*s = SkillList{}
		return nil
	}

	return json.Unmarshal(data, s)
}
