package entities

// PaymentMethod identifies how the payer settles a charge.

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// ChargeStatus is the normalized charge vocabulary kept on orders.
//
// The gateway's richer order-status vocabulary (processed, open,
// action_required, expired, cancelled) is mapped down to this set; the binary
// paid projection is simply Status == ChargeStatusApproved.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusApproved  ChargeStatus = "approved"
	ChargeStatusInProcess ChargeStatus = "in_process"
	ChargeStatusRejected  ChargeStatus = "rejected"
	ChargeStatusCancelled ChargeStatus = "cancelled"
)

// IsPaid is the binary projection used by the paid latch.
func (s ChargeStatus) IsPaid() bool { return s == ChargeStatusApproved }

// PayerIdentification is a fiscal document (CPF/CNPJ).
type PayerIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// PayerAddress is the mailing address required by boleto charges.
type PayerAddress struct {
	ZipCode      string `json:"zip_code"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	FederalUnit  string `json:"federal_unit"`
}

// Payer is the person charged at the gateway.
type Payer struct {
	Email          string              `json:"email"`
	FirstName      string              `json:"first_name,omitempty"`
	LastName       string              `json:"last_name,omitempty"`
	Identification PayerIdentification `json:"identification"`
	Address        *PayerAddress       `json:"address,omitempty"`
}

// CardData is a pre-tokenized card reference. The raw PAN never reaches this
// service.
type CardData struct {
	Token           string `json:"token"`
	Installments    int    `json:"installments"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id,omitempty"`
}
