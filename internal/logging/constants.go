package logging

// Standardized field names for structured logging.
const (
	FieldFile          = "file_path"
	FieldOrdinal       = "ordinal"
	FieldInvoiceNumber = "invoice_number"
	FieldExternalID    = "external_id"
	FieldReasonCode    = "reason_code"
	FieldBudgetYear    = "budget_year"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldCount         = "count"
	FieldSkipped       = "skipped"
	FieldOutputFile    = "output_file"
	FieldReportFile    = "report_file"
	FieldRunID         = "run_id"
)
