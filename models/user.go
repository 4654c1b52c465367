// path: models/user.go
package models

import "time"

// User mirrors the identity-provider account into the users collection.
// ID is the provider's subject claim.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
