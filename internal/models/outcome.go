package models

// FileOutcome records what happened to one source file during a run.
type FileOutcome struct {
	Ordinal        int    `json:"ordinal" yaml:"ordinal" csv:"ordinal"`
	FilePath       string `json:"filePath" yaml:"file_path" csv:"file_path"`
	Status         string `json:"status" yaml:"status" csv:"status"`
	InvoiceNumber  string `json:"invoiceNumber,omitempty" yaml:"invoice_number,omitempty" csv:"invoice_number"`
	ExternalID     string `json:"externalId,omitempty" yaml:"external_id,omitempty" csv:"external_id"`
	Amount         string `json:"amount,omitempty" yaml:"amount,omitempty" csv:"amount"`
	ContractNumber string `json:"contractNumber,omitempty" yaml:"contract_number,omitempty" csv:"contract_number"`
	Reason         string `json:"reason,omitempty" yaml:"reason,omitempty" csv:"reason"`
	// Err is the error that skipped the file.
	Err error `json:"-" yaml:"-" csv:"-"`
}

// Skipped reports whether the file was left out of the output.
func (o FileOutcome) Skipped() bool {
	return o.Status == StatusSkipped
}

// RunSummary describes a completed conversion run.
type RunSummary struct {
	RunID        string        `json:"runId" yaml:"run_id"`
	OutputFile   string        `json:"outputFile" yaml:"output_file"`
	BudgetYear   string        `json:"budgetYear" yaml:"budget_year"`
	ReasonCode   string        `json:"cumulativeReasonCode" yaml:"cumulative_reason_code"`
	Converted    int           `json:"converted" yaml:"converted"`
	Skipped      int           `json:"skipped" yaml:"skipped"`
	Total        Money         `json:"total" yaml:"total"`
	UnparsedSums []string      `json:"unparsedAmounts,omitempty" yaml:"unparsed_amounts,omitempty"`
	Files        []FileOutcome `json:"files" yaml:"files"`
}
