package domain

import "time"

// Role is the access role of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserType distinguishes regular travellers from organizers accounts.
type UserType string

const (
	UserTypeStandard UserType = "standard"
	UserTypePremium  UserType = "premium"
)

// User represents an account of the application together with the
// friendships and trips it owns.
type User struct {
	ID           int64     `json:"id"`
	Pseudo       string    `json:"pseudo" validate:"required,min=3,max=50"`
	Mail         string    `json:"mail" validate:"required,email"`
	Password     string    `json:"-" validate:"required,min=6"`
	Role         Role      `json:"role"`
	UserType     UserType  `json:"user_type"`
	Age          int       `json:"age" validate:"gte=0,lte=150"`
	Description  string    `json:"description"`
	PhoneNumber  string    `json:"phone_number"`
	Note         float64   `json:"note"`
	CreationDate time.Time `json:"creation_date"`

	Friends []*Friendship `json:"friends,omitempty"`
	Trips   []*UserTrip   `json:"trips,omitempty"`
}

// NewUser creates a user with the default role and type.
func NewUser(pseudo, mail, password string, created time.Time) *User {
	return &User{
		Pseudo:       pseudo,
		Mail:         mail,
		Password:     password,
		Role:         RoleUser,
		UserType:     UserTypeStandard,
		CreationDate: created,
	}
}

// AddFriend attaches a friendship to the user.
func (u *User) AddFriend(f *Friendship) {
	u.Friends = append(u.Friends, f)
}

// AddTrip attaches a trip participation record to the user.
func (u *User) AddTrip(t *UserTrip) {
	u.Trips = append(u.Trips, t)
}
