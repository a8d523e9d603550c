package model

// User represents a user account
type User struct {
	ID       int64  `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"` // stored as given, never exposed
	IsActive bool   `db:"is_active" json:"is_active"`
}

// Serialize returns the public fields of the user. The password is omitted.
func (u *User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"email":     u.Email,
		"is_active": u.IsActive,
	}
}

// CreateUserRequest represents a request to create a user.
// Pointer fields distinguish an absent key from a zero value.
type CreateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

// Validate checks that every required key is present
func (r *CreateUserRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Email == nil {
		errors = append(errors, requiredField("email"))
	}
	if r.Password == nil {
		errors = append(errors, requiredField("password"))
	}
	if r.IsActive == nil {
		errors = append(errors, requiredField("is_active"))
	}

	return errors
}

// ToUser builds the row to insert. Call Validate first.
func (r *CreateUserRequest) ToUser() *User {
	return &User{
		Email:    *r.Email,
		Password: *r.Password,
		IsActive: *r.IsActive,
	}
}
