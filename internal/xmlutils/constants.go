// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

// Namespaces used by SEF invoice documents.
const (
	NamespaceCBC      = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
	NamespaceCAC      = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceEnvelope = "urn:eFaktura:MinFinrs:envelop:schema"
)

// SEFNamespaces maps the conventional prefixes to their namespace URIs.
func SEFNamespaces() map[string]string {
	return map[string]string{
		"cbc": NamespaceCBC,
		"cac": NamespaceCAC,
		"env": NamespaceEnvelope,
	}
}

// SEFInvoice contains the prefixed path expressions used for SEF invoice parsing
type SEFInvoice struct {
	// Header contains paths for the invoice identification
	Header struct {
		InvoiceNumber  string
		IssueDate      string
		DueDate        string
		ContractNumber string
	}

	// Payee contains paths for the supplier being paid
	Payee struct {
		Account string
		Name    string
		City    string
	}

	// Totals contains paths for monetary totals
	Totals struct {
		PayableAmount string
	}
}

// DefaultSEFPaths returns a SEFInvoice struct with the default path expressions
func DefaultSEFPaths() SEFInvoice {
	sef := SEFInvoice{}

	sef.Header.InvoiceNumber = ".//cbc:ID"
	sef.Header.IssueDate = ".//cbc:IssueDate"
	sef.Header.DueDate = ".//cbc:DueDate"
	sef.Header.ContractNumber = ".//cac:Contract/cbc:ID"

	sef.Payee.Account = ".//cac:PayeeFinancialAccount/cbc:ID"
	sef.Payee.Name = ".//cac:PartyName/cbc:Name"
	sef.Payee.City = ".//cac:PostalAddress/cbc:CityName"

	sef.Totals.PayableAmount = ".//cbc:PayableAmount"

	return sef
}

// Namespace-agnostic paths used by the format sniffer.
const (
	XPathInvoiceRoot   = "//Invoice"
	XPathPayableAmount = "//Invoice//PayableAmount"
	XPathEnvelope      = "/DocumentEnvelope"
	XPathInvoiceID     = "//Invoice/ID"
)
