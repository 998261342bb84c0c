package entity

import "time"

// User represents a registered bot user. The identifier is supplied by the
// messaging transport; Timezone is a whole-hour UTC offset used to translate
// the user's wall-clock dates into instants.
type User struct {
	ID        int64
	Timezone  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User with a zero (UTC) timezone.
func NewUser(id int64) *User {
	now := time.Now().UTC()

	return &User{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
