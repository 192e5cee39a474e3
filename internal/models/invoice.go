package models

// InvoiceRecord holds the fields extracted from one SEF invoice document.
// Values are carried verbatim from the source.
type InvoiceRecord struct {
	FilePath       string `json:"filePath" yaml:"file_path" csv:"file_path"`
	Ordinal        int    `json:"ordinal" yaml:"ordinal" csv:"ordinal"`
	InvoiceNumber  string `json:"invoiceNumber" yaml:"invoice_number" csv:"invoice_number"`
	AccountNumber  string `json:"accountNumber" yaml:"account_number" csv:"account_number"`
	Recipient      string `json:"recipient" yaml:"recipient" csv:"recipient"`
	RecipientPlace string `json:"recipientPlace" yaml:"recipient_place" csv:"recipient_place"`
	Amount         string `json:"amount" yaml:"amount" csv:"amount"`
	IssueDate      string `json:"issueDate" yaml:"issue_date" csv:"issue_date"`
	DueDate        string `json:"dueDate" yaml:"due_date" csv:"due_date"`
	ContractNumber string `json:"contractNumber" yaml:"contract_number" csv:"contract_number"`
}

// HasAccount reports whether the source carried a payee account.
func (r InvoiceRecord) HasAccount() bool {
	return r.AccountNumber != ""
}

// ClassifiedInvoice is an extracted invoice paired with the economic
// classification code the operator entered for it.
type ClassifiedInvoice struct {
	InvoiceRecord
	EconomicClassificationCode string `json:"economicClassificationCode" yaml:"economic_classification_code"`
}

// FormatInfo describes a source file that passed the format check.
type FormatInfo struct {
	Enveloped     bool
	InvoiceNumber string
}
