package checkout

// Step is the checkout position: address -> payment, strictly linear.
type Step string

const (
	StepAddress Step = "address"
	StepPayment Step = "payment"
)

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "cod"
	PaymentCard PaymentMethod = "card"
)

// ShippingAddress is the structured postal/contact form. It is persisted
// independently of cart and wishlist and pre-fills when the shopper returns
// to the address step.
type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Mobile  string `json:"mobile" validate:"required,numeric,len=10"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required,numeric,len=6"`
}
