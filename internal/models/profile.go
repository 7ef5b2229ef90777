package models

// UserProfile is a row of the user_profiles table.
type UserProfile struct {
	UserID   string `db:"user_id"`
	FullName string `db:"full_name"`
	Currency string `db:"currency"`
	AuditFields
}
