package models

// User is the service-side user record. It is immutable for the lifetime of
// an authenticated session; ID is the only key used for ownership checks.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
