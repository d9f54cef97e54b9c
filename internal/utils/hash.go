package utils

import "golang.org/x/crypto/bcrypt"

// Passwords hashes and checks credentials at a fixed bcrypt cost. The zero
// value uses bcrypt.DefaultCost.
type Passwords struct {
	Cost int
}

func (p Passwords) Hash(pw string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	return string(b), err
}

// Matches never reports true for an empty hash.
func (Passwords) Matches(hashed, pw string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
