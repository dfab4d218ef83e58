package domain

import "errors"

const (
	DefaultWindowSize = 5
	TopCategories     = 3

	StatusSuccess = "success"
	StatusError   = "error"

	MessageUserNotFound = "User not found"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidClick = errors.New("user id and category are required")
)

// ValidateClick checks structure only. Any non-empty user id or category is
// accepted as-is, whitespace included.
func ValidateClick(userID, category string) error {
	if userID == "" || category == "" {
		return ErrInvalidClick
	}
	return nil
}
