package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB column helpers so sqlx can scan the nested remito/movement
// structures straight into the model types.

func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonbScan(dest interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// LineItems is a JSONB-backed slice of LineItem.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]LineItem{})
	}
	return jsonbValue([]LineItem(l))
}

func (l *LineItems) Scan(src interface{}) error { return jsonbScan(l, src) }

// RejectedItemList is a JSONB-backed slice of RejectedItem. NULL in the
// database scans to nil, meaning no rejection was recorded.
type RejectedItemList []RejectedItem

func (l RejectedItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return jsonbValue([]RejectedItem(l))
}

func (l *RejectedItemList) Scan(src interface{}) error { return jsonbScan(l, src) }

// StringList is a JSONB-backed slice of strings (support ticket items).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue([]string{})
	}
	return jsonbValue([]string(l))
}

func (l *StringList) Scan(src interface{}) error { return jsonbScan(l, src) }

// PickupItemList is a JSONB-backed slice of PickupItem.
type PickupItemList []PickupItem

func (l PickupItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return jsonbValue([]PickupItem(l))
}

func (l *PickupItemList) Scan(src interface{}) error { return jsonbScan(l, src) }

// Value implements driver.Valuer for DeliveryProof pointers stored as a
// nullable JSONB column.
func (p *DeliveryProof) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return jsonbValue(*p)
}

func (p *DeliveryProof) Scan(src interface{}) error { return jsonbScan(p, src) }
