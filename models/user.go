package models

import (
	"bytes"
	"encoding/json"
)

// MaxAddresses caps the address book; the oldest entry is evicted beyond it.
const MaxAddresses = 100

// User is a shop account. Passwords are stored in plain text in the users file.
type User struct {
	Username      string    `json:"username"`
	Phone         string    `json:"phone"`
	Password      string    `json:"password"`
	Email         string    `json:"email"`
	UsualAddress  []Address `json:"usual_address"`
	RegisterTime  Timestamp `json:"register_time"`
	LastLoginTime Timestamp `json:"last_login_time"`
}

// Clone returns a copy with its own address slice.
func (u *User) Clone() *User {
	c := *u
	c.UsualAddress = append([]Address{}, u.UsualAddress...)
	return &c
}

type userRecord struct {
	Username      string    `json:"username"`
	Phone         string    `json:"phone"`
	Password      string    `json:"password"`
	Email         *string   `json:"email"`
	UsualAddress  []Address `json:"usual_address"`
	RegisterTime  Timestamp `json:"register_time"`
	LastLoginTime Timestamp `json:"last_login_time"`
}

// MarshalJSON writes an empty email as null, as the users file always has.
func (u User) MarshalJSON() ([]byte, error) {
	rec := userRecord{
		Username:      u.Username,
		Phone:         u.Phone,
		Password:      u.Password,
		UsualAddress:  u.UsualAddress,
		RegisterTime:  u.RegisterTime,
		LastLoginTime: u.LastLoginTime,
	}
	if u.Email != "" {
		email := u.Email
		rec.Email = &email
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
