package models

import (
	"encoding/json"
	"strings"
)

// AddressSeparator joins the fields of an address in the data files.
const AddressSeparator = "~"

// Address is a delivery address. On disk it is the legacy
// "name~phone~line" string; in memory the three fields stay separate.
type Address struct {
	Name  string `json:"-"`
	Phone string `json:"-"`
	Line  string `json:"-"`
}

// ParseAddress splits a legacy address string. The name may itself contain
// the separator, so phone and line are taken from the right. A string without
// any separator is a bare address line.
func ParseAddress(s string) Address {
	parts := strings.Split(s, AddressSeparator)
	switch len(parts) {
	case 1:
		return Address{Line: s}
	case 2:
		return Address{Phone: parts[0], Line: parts[1]}
	}
	n := len(parts)
	return Address{
		Name:  strings.Join(parts[:n-2], AddressSeparator),
		Phone: parts[n-2],
		Line:  parts[n-1],
	}
}

// String returns the legacy joined form.
func (a Address) String() string {
	if a.Name == "" && a.Phone == "" {
		return a.Line
	}
	return strings.Join([]string{a.Name, a.Phone, a.Line}, AddressSeparator)
}

// Validate rejects addresses that would not parse back into the same fields.
func (a Address) Validate() error {
	if strings.TrimSpace(a.Line) == "" {
		return NewValidationError("address", "address line is required")
	}
	if strings.Contains(a.Phone, AddressSeparator) {
		return NewValidationError("phone", "must not contain '"+AddressSeparator+"'")
	}
	if strings.Contains(a.Line, AddressSeparator) {
		return NewValidationError("address", "must not contain '"+AddressSeparator+"'")
	}
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAddress(s)
	return nil
}
