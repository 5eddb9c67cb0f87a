package models

import "time"

// User mirrors a profile fetched from the identity provider. Sub is the
// provider-issued subject identifier and is the stable key for upserts.
type User struct {
	ID           int64     `json:"id"`
	Sub          string    `json:"sub"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Picture      string    `json:"picture"`
	LastLoggedIn time.Time `json:"last_logged_in"`
	CreatedAt    time.Time `json:"created_at"`
}
