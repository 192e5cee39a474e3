package spiri

import (
	"fmt"
	"io"

	"fjacquet/sef-spiri/internal/models"

	"github.com/beevik/etree"
)

// Element names of the SPIRI document.
const (
	ElementCommitments = "commitments"
	ElementCommitment  = "commitment"
	ElementItem        = "item"
)

// Render builds the XML tree for c, including the UTF-8 declaration.
func Render(c models.Commitments) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(ElementCommitments)
	root.CreateAttr("cumulative_reason_code", c.CumulativeReasonCode)
	root.CreateAttr("currency_code", c.CurrencyCode)
	root.CreateAttr("treasury", c.Treasury)
	root.CreateAttr("budget_year", c.BudgetYear)
	root.CreateAttr("budget_user_id", c.BudgetUserID)

	for _, commitment := range c.Items {
		el := root.CreateElement(ElementCommitment)
		for _, attr := range commitment.Attributes() {
			el.CreateAttr(attr[0], attr[1])
		}

		item := el.CreateElement(ElementItem)
		for _, field := range commitment.Item.Fields() {
			item.CreateElement(field[0]).SetText(field[1])
		}
	}

	return doc
}

// Decode reads a SPIRI document back into the model.
func Decode(r io.Reader) (models.Commitments, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return models.Commitments{}, fmt.Errorf("failed to parse SPIRI document: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != ElementCommitments {
		return models.Commitments{}, fmt.Errorf("missing %s root element", ElementCommitments)
	}

	out := models.Commitments{
		CumulativeReasonCode: root.SelectAttrValue("cumulative_reason_code", ""),
		CurrencyCode:         root.SelectAttrValue("currency_code", ""),
		Treasury:             root.SelectAttrValue("treasury", ""),
		BudgetYear:           root.SelectAttrValue("budget_year", ""),
		BudgetUserID:         root.SelectAttrValue("budget_user_id", ""),
	}

	for _, el := range root.SelectElements(ElementCommitment) {
		attr := func(key string) string { return el.SelectAttrValue(key, "") }
		c := models.Commitment{
			ReasonCode:            attr("reason_code"),
			ExternalID:            attr("external_id"),
			Recipient:             attr("recipient"),
			RecipientPlace:        attr("recipient_place"),
			AccountNumber:         attr("account_number"),
			InvoiceNumber:         attr("invoice_number"),
			InvoiceType:           attr("invoice_type"),
			InvoiceDate:           attr("invoice_date"),
			DueDate:               attr("due_date"),
			PaymentCode:           attr("payment_code"),
			CreditModel:           attr("credit_model"),
			CreditReferenceNumber: attr("credit_reference_number"),
			PaymentBasis:          attr("payment_basis"),
		}

		if item := el.SelectElement(ElementItem); item != nil {
			text := func(tag string) string {
				if e := item.SelectElement(tag); e != nil {
					return e.Text()
				}
				return ""
			}
			c.Item = models.Item{
				BudgetUserID:               text("budget_user_id"),
				ProgramCode:                text("program_code"),
				ProjectCode:                text("project_code"),
				EconomicClassificationCode: text("economic_classification_code"),
				SourceOfFundingCode:        text("source_of_funding_code"),
				FunctionCode:               text("function_code"),
				Amount:                     text("amount"),
				ExpectedPaymentDate:        text("expected_payment_date"),
				UrgentPayment:              text("urgent_payment"),
				PostingAccount:             text("posting_account"),
				RecordingAccount:           text("recording_account"),
			}
		}
		out.Items = append(out.Items, c)
	}

	return out, nil
}
