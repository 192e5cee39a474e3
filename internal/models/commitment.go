package models

// Commitments is the root of a SPIRI budget-commitment document.
type Commitments struct {
	CumulativeReasonCode string       `json:"cumulativeReasonCode" yaml:"cumulative_reason_code"`
	CurrencyCode         string       `json:"currencyCode" yaml:"currency_code"`
	Treasury             string       `json:"treasury" yaml:"treasury"`
	BudgetYear           string       `json:"budgetYear" yaml:"budget_year"`
	BudgetUserID         string       `json:"budgetUserId" yaml:"budget_user_id"`
	Items                []Commitment `json:"commitments" yaml:"commitments"`
}

// Len returns the number of commitments.
func (c Commitments) Len() int {
	return len(c.Items)
}

// Commitment is a single invoice obligation.
type Commitment struct {
	ReasonCode            string `json:"reasonCode" yaml:"reason_code"`
	ExternalID            string `json:"externalId" yaml:"external_id"`
	Recipient             string `json:"recipient" yaml:"recipient"`
	RecipientPlace        string `json:"recipientPlace" yaml:"recipient_place"`
	AccountNumber         string `json:"accountNumber" yaml:"account_number"`
	InvoiceNumber         string `json:"invoiceNumber" yaml:"invoice_number"`
	InvoiceType           string `json:"invoiceType" yaml:"invoice_type"`
	InvoiceDate           string `json:"invoiceDate" yaml:"invoice_date"`
	DueDate               string `json:"dueDate" yaml:"due_date"`
	PaymentCode           string `json:"paymentCode" yaml:"payment_code"`
	CreditModel           string `json:"creditModel" yaml:"credit_model"`
	CreditReferenceNumber string `json:"creditReferenceNumber" yaml:"credit_reference_number"`
	PaymentBasis          string `json:"paymentBasis" yaml:"payment_basis"`
	Item                  Item   `json:"item" yaml:"item"`
}

// Attributes returns the commitment attributes as name/value pairs in
// document order.
func (c Commitment) Attributes() [][2]string {
	return [][2]string{
		{"reason_code", c.ReasonCode},
		{"external_id", c.ExternalID},
		{"recipient", c.Recipient},
		{"recipient_place", c.RecipientPlace},
		{"account_number", c.AccountNumber},
		{"invoice_number", c.InvoiceNumber},
		{"invoice_type", c.InvoiceType},
		{"invoice_date", c.InvoiceDate},
		{"due_date", c.DueDate},
		{"payment_code", c.PaymentCode},
		{"credit_model", c.CreditModel},
		{"credit_reference_number", c.CreditReferenceNumber},
		{"payment_basis", c.PaymentBasis},
	}
}

// Item is the budget line of a commitment.
type Item struct {
	BudgetUserID               string `json:"budgetUserId" yaml:"budget_user_id"`
	ProgramCode                string `json:"programCode" yaml:"program_code"`
	ProjectCode                string `json:"projectCode" yaml:"project_code"`
	EconomicClassificationCode string `json:"economicClassificationCode" yaml:"economic_classification_code"`
	SourceOfFundingCode        string `json:"sourceOfFundingCode" yaml:"source_of_funding_code"`
	FunctionCode               string `json:"functionCode" yaml:"function_code"`
	Amount                     string `json:"amount" yaml:"amount"`
	ExpectedPaymentDate        string `json:"expectedPaymentDate" yaml:"expected_payment_date"`
	UrgentPayment              string `json:"urgentPayment" yaml:"urgent_payment"`
	PostingAccount             string `json:"postingAccount" yaml:"posting_account"`
	RecordingAccount           string `json:"recordingAccount" yaml:"recording_account"`
}

// Fields returns the item children as name/text pairs in document order.
func (i Item) Fields() [][2]string {
	return [][2]string{
		{"budget_user_id", i.BudgetUserID},
		{"program_code", i.ProgramCode},
		{"project_code", i.ProjectCode},
		{"economic_classification_code", i.EconomicClassificationCode},
		{"source_of_funding_code", i.SourceOfFundingCode},
		{"function_code", i.FunctionCode},
		{"amount", i.Amount},
		{"expected_payment_date", i.ExpectedPaymentDate},
		{"urgent_payment", i.UrgentPayment},
		{"posting_account", i.PostingAccount},
		{"recording_account", i.RecordingAccount},
	}
}
