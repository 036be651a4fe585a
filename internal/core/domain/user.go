package domain

import "errors"

const (
	RoleMedico        = "medico"
	RoleRecepcionista = "recepcionista"
	RoleFarmaceutico  = "farmaceutico"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnrecognizedRole = errors.New("unrecognized role")
var ErrUserNotFound = errors.New("user not found")

// User models a staff account in the credential directory. The directory is
// static and seeded at startup; passwords are bcrypt-hashed before they ever
// reach this struct.
type User struct {
	Code         string `json:"code"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar"`
}
