package transaction

// Transaction is the API response model for a transaction record.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	AccountID   string `json:"accountId" doc:"Account UUID"`
	AccountName string `json:"accountName" doc:"Display name of the account"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Description string `json:"description" doc:"Human description"`
	Category    string `json:"category" doc:"Category label"`
	Amount      string `json:"amount" doc:"Signed decimal amount; positive for credits"`
	Status      string `json:"status" doc:"completed or pending"`
	Type        string `json:"type" doc:"credit or debit"`
}
