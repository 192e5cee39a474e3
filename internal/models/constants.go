package models

// Cumulative reason codes for the commitments root.
const (
	ReasonCodeRequestPayment = "PO07"
	ReasonCodeRecordOnly     = "PO05"
)

// Fixed attribute and item values of the SPIRI document.
const (
	CommitmentReasonCode = "PO01"
	CurrencyCode         = "RSD"
	Treasury             = "601"
	InvoiceType          = "3"
	CreditModel          = ""
	UrgentPayment        = "false"
	PostingAccount       = "252111"
	PaymentBasisPrefix   = "Уплата по фактури број "
)

// Defaults for optional source fields.
const (
	PlaceholderAccount = "000000000000000000"
	ContractNotFound   = "N/A"
)

// File outcome statuses
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
	PermissionReportFile = 0644
)
