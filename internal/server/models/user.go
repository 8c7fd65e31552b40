package models

// User is an account. PasswordHash is a bcrypt hash and never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// UserWithToken is the public view returned by register and login.
type UserWithToken struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
