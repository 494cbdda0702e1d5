package access

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

type Right string

const (
	RightAdmin     Right = "ADMIN"
	RightPowerUser Right = "POWER_USER"
)

func ParseRight(value string) (Right, error) {
	switch Right(value) {
	case RightAdmin, RightPowerUser:
		return Right(value), nil
	}
	return "", fmt.Errorf("%w: '%v'", ErrUnknownRight, value)
}

// Rights is a set of flags with no implied hierarchy between them.
type Rights []Right

func (r Rights) Has(right Right) bool {
	return slices.Contains(r, right)
}

func (r Rights) IsAdmin() bool {
	return r.Has(RightAdmin)
}

func (r Rights) IsPowerUser() bool {
	return r.Has(RightPowerUser)
}

// CanActForOthers gates booking or cancelling on behalf of another member.
// Admins are granted it explicitly here, not through the stored flags.
func (r Rights) CanActForOthers() bool {
	return r.IsPowerUser() || r.IsAdmin()
}

func (r Rights) with(right Right) Rights {
	if r.Has(right) {
		return r
	}
	next := append(slices.Clone(r), right)
	slices.Sort(next)
	return next
}

// MarshalJSON never emits null so clients always get a list.
func (r Rights) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Right(r))
}

type UserRights struct {
	UserID string `json:"userId"`
	Rights Rights `json:"rights"`
}

type AuthorizedUser struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
