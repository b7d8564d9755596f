package user

// NewUser represents the request body for creating a new user.
type NewUser struct {
	Pseudo      string `json:"pseudo" validate:"required,max=50,min=3"`
	Mail        string `json:"mail" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Age         int    `json:"age" validate:"gte=0,lte=150"`
	Description string `json:"description" validate:"max=500"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
}

// UpdateUserInput represents the request body for updating user information.
// Empty fields keep their current value.
type UpdateUserInput struct {
	Mail        string `json:"mail" validate:"omitempty,email,max=255"`
	Password    string `json:"password" validate:"omitempty,min=6,max=72"`
	Age         *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Description string `json:"description" validate:"max=500"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
}

// PasswordInput represents the request body for password confirmation operations.
type PasswordInput struct {
	Password string `json:"password" validate:"required"`
}
