package models

// SessionParameters are the organisation-level values collected once per run
// and shared by every commitment in the output.
type SessionParameters struct {
	BudgetUserID        string `json:"budgetUserId" yaml:"budget_user_id"`
	ExpectedPaymentDate string `json:"expectedPaymentDate" yaml:"expected_payment_date"`
	PaymentCode         string `json:"paymentCode" yaml:"payment_code"`
	ProgramCode         string `json:"programCode" yaml:"program_code"`
	ProjectCode         string `json:"projectCode" yaml:"project_code"`
	FundingSourceCode   string `json:"fundingSourceCode" yaml:"source_of_funding_code"`
	FunctionCode        string `json:"functionCode" yaml:"function_code"`
	RecordingAccount    string `json:"recordingAccount" yaml:"recording_account"`
	RequestPayment      bool   `json:"requestPayment" yaml:"request_payment"`
}

// CumulativeReasonCode returns PO07 when payment is requested and PO05 otherwise.
func (p SessionParameters) CumulativeReasonCode() string {
	if p.RequestPayment {
		return ReasonCodeRequestPayment
	}
	return ReasonCodeRecordOnly
}
