package collector

import (
	"context"
	"fmt"

	"fjacquet/sef-spiri/internal/models"
)

// Session field keys, shared with configuration defaults.
const (
	KeyBudgetUserID        = "budget_user_id"
	KeyExpectedPaymentDate = "expected_payment_date"
	KeyPaymentCode         = "payment_code"
	KeyProgramCode         = "program_code"
	KeyProjectCode         = "project_code"
	KeyFundingSourceCode   = "funding_source_code"
	KeyFunctionCode        = "function_code"
	KeyRecordingAccount    = "recording_account"
)

// FormField is one text question of the session form.
type FormField struct {
	Key    string
	Label  string
	assign func(p *models.SessionParameters, v string)
}

// FormFields returns the session questions in the order they are asked.
func FormFields() []FormField {
	return []FormField{
		{KeyBudgetUserID, "Broj budžetskog korisnika",
			func(p *models.SessionParameters, v string) { p.BudgetUserID = v }},
		{KeyExpectedPaymentDate, "Datum očekivanog plaćanja (YYYY-MM-DD)",
			func(p *models.SessionParameters, v string) { p.ExpectedPaymentDate = v }},
		{KeyPaymentCode, "Šifra plaćanja",
			func(p *models.SessionParameters, v string) { p.PaymentCode = v }},
		{KeyProgramCode, "Program",
			func(p *models.SessionParameters, v string) { p.ProgramCode = v }},
		{KeyProjectCode, "Projektna aktivnost",
			func(p *models.SessionParameters, v string) { p.ProjectCode = v }},
		{KeyFundingSourceCode, "Izvor finansiranja",
			func(p *models.SessionParameters, v string) { p.FundingSourceCode = v }},
		{KeyFunctionCode, "Funkcija",
			func(p *models.SessionParameters, v string) { p.FunctionCode = v }},
		{KeyRecordingAccount, "Evidencioni račun",
			func(p *models.SessionParameters, v string) { p.RecordingAccount = v }},
	}
}

// RequestPaymentLabel is the yes/no question for the cumulative reason code.
const RequestPaymentLabel = "Kreirati zahtev za plaćanje"

// Form collects the session parameters.
type Form struct {
	prompter       *Prompter
	defaults       map[string]string
	requestPayment bool
}

// NewForm creates a Form. defaults prefill text answers by field key;
// requestPayment is the default of the yes/no question.
func NewForm(prompter *Prompter, defaults map[string]string, requestPayment bool) *Form {
	return &Form{prompter: prompter, defaults: defaults, requestPayment: requestPayment}
}

// Collect asks every question in order. Answers are kept verbatim.
func (f *Form) Collect(ctx context.Context) (models.SessionParameters, error) {
	var params models.SessionParameters

	for _, field := range FormFields() {
		answer, err := f.prompter.Ask(ctx, field.Label, f.defaults[field.Key])
		if err != nil {
			return models.SessionParameters{}, fmt.Errorf("reading %s: %w", field.Key, err)
		}
		field.assign(&params, answer)
	}

	requestPayment, err := f.prompter.Confirm(ctx, RequestPaymentLabel, f.requestPayment)
	if err != nil {
		return models.SessionParameters{}, fmt.Errorf("reading request payment: %w", err)
	}
	params.RequestPayment = requestPayment

	return params, nil
}
