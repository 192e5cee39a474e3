package spiri

import (
	"fmt"

	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/models"
)

// ExternalID combines the invoice number with its 1-based batch ordinal.
func ExternalID(invoiceNumber string, ordinal int) string {
	return fmt.Sprintf("%s-%d", invoiceNumber, ordinal)
}

// PaymentBasis is the payment description attached to every commitment.
func PaymentBasis(invoiceNumber string) string {
	return models.PaymentBasisPrefix + invoiceNumber
}

// NewCommitments returns the empty document root for a session.
func NewCommitments(params models.SessionParameters) (models.Commitments, error) {
	year, err := BudgetYear(params.ExpectedPaymentDate)
	if err != nil {
		return models.Commitments{}, err
	}
	return models.Commitments{
		CumulativeReasonCode: params.CumulativeReasonCode(),
		CurrencyCode:         models.CurrencyCode,
		Treasury:             models.Treasury,
		BudgetYear:           year,
		BudgetUserID:         params.BudgetUserID,
	}, nil
}

// NewCommitment maps one classified invoice onto a commitment.
func NewCommitment(params models.SessionParameters, inv models.ClassifiedInvoice) models.Commitment {
	return models.Commitment{
		ReasonCode:            models.CommitmentReasonCode,
		ExternalID:            ExternalID(inv.InvoiceNumber, inv.Ordinal),
		Recipient:             inv.Recipient,
		RecipientPlace:        inv.RecipientPlace,
		AccountNumber:         NormalizeAccountNumber(inv.AccountNumber),
		InvoiceNumber:         inv.InvoiceNumber,
		InvoiceType:           models.InvoiceType,
		InvoiceDate:           inv.IssueDate,
		DueDate:               inv.DueDate,
		PaymentCode:           params.PaymentCode,
		CreditModel:           models.CreditModel,
		CreditReferenceNumber: inv.InvoiceNumber,
		PaymentBasis:          PaymentBasis(inv.InvoiceNumber),
		Item: models.Item{
			BudgetUserID:               params.BudgetUserID,
			ProgramCode:                params.ProgramCode,
			ProjectCode:                params.ProjectCode,
			EconomicClassificationCode: inv.EconomicClassificationCode,
			SourceOfFundingCode:        params.FundingSourceCode,
			FunctionCode:               params.FunctionCode,
			Amount:                     inv.Amount,
			ExpectedPaymentDate:        params.ExpectedPaymentDate,
			UrgentPayment:              models.UrgentPayment,
			PostingAccount:             models.PostingAccount,
			RecordingAccount:           params.RecordingAccount,
		},
	}
}

// Build assembles the commitments document for a session. Invoices keep
// their order. An invoice without a classification code fails the whole
// build and no partial document is returned.
func Build(params models.SessionParameters, invoices []models.ClassifiedInvoice) (models.Commitments, error) {
	doc, err := NewCommitments(params)
	if err != nil {
		return models.Commitments{}, err
	}

	items := make([]models.Commitment, 0, len(invoices))
	for _, inv := range invoices {
		if inv.EconomicClassificationCode == "" {
			return models.Commitments{}, &converterror.ClassificationRequiredError{
				FilePath:      inv.FilePath,
				InvoiceNumber: inv.InvoiceNumber,
				Ordinal:       inv.Ordinal,
			}
		}
		items = append(items, NewCommitment(params, inv))
	}
	doc.Items = items

	return doc, nil
}
