package domain

import "golang.org/x/crypto/bcrypt"

type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"nombre" db:"nombre"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	Role     string `json:"rol" db:"rol"`
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
