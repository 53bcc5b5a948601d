package checkout

// Stage is where the shopper is in the checkout flow. The numbered stages
// form the linear shipping, shipping-method, payment sequence; Success and
// Empty are terminal.
type Stage string

const (
	StageShipping       Stage = "SHIPPING"
	StageShippingMethod Stage = "SHIPPING_METHOD"
	StagePayment        Stage = "PAYMENT"
	StageSuccess        Stage = "SUCCESS"
	StageEmpty          Stage = "EMPTY"
)

// Step returns the 1-based step number for the progress indicator, or 0 for
// terminal stages.
func (s Stage) Step() int {
	switch s {
	case StageShipping:
		return 1
	case StageShippingMethod:
		return 2
	case StagePayment:
		return 3
	default:
		return 0
	}
}

func (s Stage) Terminal() bool {
	return s == StageSuccess || s == StageEmpty
}

// Shipping methods.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// Payment methods. Transfer is the default selection.
const (
	PaymentTransfer = "transfer"
	PaymentCard     = "card"
	PaymentEwallet  = "ewallet"
)

type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
}

// State is a snapshot of one checkout flow.
type State struct {
	Stage          Stage        `json:"stage"`
	Step           int          `json:"step"`
	Shipping       ShippingInfo `json:"shipping"`
	ShippingMethod string       `json:"shipping_method"`
	PaymentMethod  string       `json:"payment_method"`
	Processing     bool         `json:"processing"`
	Succeeded      bool         `json:"succeeded"`
	OrderRef       string       `json:"order_ref,omitempty"`
	Total          int64        `json:"total"`
}

// machine is the live flow for one session.
type machine struct {
	stage          Stage
	shipping       ShippingInfo
	shippingMethod string
	paymentMethod  string
	processing     bool
	succeeded      bool
	orderRef       string
	total          int64
}

func newMachine(stage Stage, total int64) *machine {
	return &machine{
		stage:          stage,
		shippingMethod: ShippingStandard,
		paymentMethod:  PaymentTransfer,
		total:          total,
	}
}

func (m *machine) snapshot() *State {
	return &State{
		Stage:          m.stage,
		Step:           m.stage.Step(),
		Shipping:       m.shipping,
		ShippingMethod: m.shippingMethod,
		PaymentMethod:  m.paymentMethod,
		Processing:     m.processing,
		Succeeded:      m.succeeded,
		OrderRef:       m.orderRef,
		Total:          m.total,
	}
}
