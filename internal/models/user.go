package models

import "time"

// User is one registered account. The password hash never serializes to
// JSON and must never appear in responses, logs, or tokens.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
