package domain

import "time"

// Friendship is one directed half of a friend relationship, keyed by
// (UserID, FriendName). An accepted friendship is stored as two mirrored
// rows, one per direction.
type Friendship struct {
	UserID      int64     `json:"user_id"`
	FriendName  string    `json:"friend_name" validate:"required"`
	IsRequested bool      `json:"is_requested"`
	IsWaiting   bool      `json:"is_waiting"`
	StartDate   time.Time `json:"start_date"`
}

// NewFriendship creates the requester side of a friendship.
func NewFriendship(userID int64, friendName string, start time.Time) *Friendship {
	return &Friendship{
		UserID:      userID,
		FriendName:  friendName,
		IsRequested: true,
		IsWaiting:   true,
		StartDate:   start,
	}
}

// Mirror builds the inverse row owned by friendID and pointing back at
// userPseudo.
func (f *Friendship) Mirror(friendID int64, userPseudo string) *Friendship {
	return &Friendship{
		UserID:      friendID,
		FriendName:  userPseudo,
		IsRequested: false,
		IsWaiting:   true,
		StartDate:   f.StartDate,
	}
}
