package models

// User is the session record. It is persisted verbatim under the "user"
// storage key and refreshed from GET /api/user/{id}.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /api/register. Confirm is checked
// locally and never sent.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Confirm  string `json:"-" validate:"eqfield=Password"`
}
