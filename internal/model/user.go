package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
)

func (r UserRole) Valid() bool {
	return r == Student || r == Teacher
}

// Identity is the authenticated actor of a session.
type Identity struct {
	Role   UserRole `json:"role"`
	UserID string   `json:"userId"`
}
