package pot

// AmountInput represents the request body for a credit or a debit.
type AmountInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CancelInput represents the request body for a pot cancellation.
type CancelInput struct {
	Reason string `json:"reason" validate:"required,max=500"`
}
