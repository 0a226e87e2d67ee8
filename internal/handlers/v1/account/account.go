package account

// Account is the API response model for an account.
type Account struct {
	ID            string `json:"id" doc:"Account UUID"`
	Name          string `json:"name" doc:"Display name"`
	AccountNumber string `json:"accountNumber" doc:"Masked account number"`
	Balance       string `json:"balance" doc:"Decimal balance"`
	Type          string `json:"type" doc:"Account kind: checking, savings, credit"`
}
