// Package memory provides the in-process data adapters: the static
// credential directory and the patient admission directory. Both are
// explicitly constructed and injected; nothing in this package is ambient
// global state.
package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hygia-health/hygia-api/internal/core/domain"
)

// SeedUser is a credential-directory entry before hashing.
type SeedUser struct {
	Code     string
	Password string
	Name     string
	Role     string
	Avatar   string
}

// DefaultSeedUsers returns the standard demo accounts.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Code: "12345", Password: "pass", Name: "Dr. Pérez", Role: domain.RoleMedico, Avatar: "DP"},
		{Code: "67890", Password: "pass", Name: "Sra. García", Role: domain.RoleRecepcionista, Avatar: "SG"},
		{Code: "24680", Password: "pass", Name: "Farm. López", Role: domain.RoleFarmaceutico, Avatar: "FL"},
	}
}

// CredentialDirectory is a static, read-only code→user mapping. Passwords
// are bcrypt-hashed at construction; the cleartext never outlives seeding.
type CredentialDirectory struct {
	users map[string]*domain.User
}

// NewCredentialDirectory hashes the seed passwords and builds the directory.
func NewCredentialDirectory(seeds []SeedUser) (*CredentialDirectory, error) {
	users := make(map[string]*domain.User, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", s.Code, err)
		}
		users[s.Code] = &domain.User{
			Code:         s.Code,
			PasswordHash: string(hash),
			Name:         s.Name,
			Role:         s.Role,
			Avatar:       s.Avatar,
		}
	}
	return &CredentialDirectory{users: users}, nil
}

// FindByCode looks up a user by login code.
func (d *CredentialDirectory) FindByCode(_ context.Context, code string) (*domain.User, error) {
	user, ok := d.users[code]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}
