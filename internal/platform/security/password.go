// Package security hashes passwords and issues signed session tokens.
package security

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used outside tests.
const DefaultBcryptCost = 12

// Passwords hashes and verifies bcrypt passwords.
type Passwords struct {
	cost int

	decoyOnce sync.Once
	decoy     []byte
}

// NewPasswords returns a hasher with the given bcrypt cost. Costs outside
// bcrypt's accepted range fall back to DefaultBcryptCost.
func NewPasswords(cost int) *Passwords {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	return &Passwords{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (p *Passwords) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Check reports whether password matches hash. Malformed hashes never match.
func (p *Passwords) Check(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Decoy spends the same bcrypt work as Check against a fixed hash and
// always fails. Login calls it for unknown usernames so response time does
// not reveal which accounts exist.
func (p *Passwords) Decoy(password string) bool {
	p.decoyOnce.Do(func() {
		// GenerateFromPassword only fails on costs NewPasswords already rejects.
		p.decoy, _ = bcrypt.GenerateFromPassword([]byte("decoy password"), p.cost)
	})

	_ = bcrypt.CompareHashAndPassword(p.decoy, []byte(password))

	return false
}

// NeedsRehash is true when hash was produced with a different cost.
func (p *Passwords) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}

	return cost != p.cost
}
