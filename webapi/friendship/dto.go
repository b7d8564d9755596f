package friendship

// RequestInput represents the request body for a friendship request.
type RequestInput struct {
	FriendName string `json:"friend_name" validate:"required,max=50"`
}
