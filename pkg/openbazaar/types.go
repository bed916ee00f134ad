package openbazaar

// Object is a service-defined JSON object passed through untouched.
type Object map[string]any

// String returns the string value stored at key, or "".
func (o Object) String(key string) string {
	if o == nil {
		return ""
	}
	if s, ok := o[key].(string); ok {
		return s
	}
	return ""
}

// Object returns the nested object stored at key, or nil.
func (o Object) Object(key string) Object {
	if o == nil {
		return nil
	}
	if m, ok := o[key].(map[string]any); ok {
		return Object(m)
	}
	return nil
}

// Notifications is the body of GET /ob/notifications.
type Notifications struct {
	Notifications []Object `json:"notifications"`
	Total         int      `json:"total"`
	Unread        int      `json:"unread,omitempty"`
}

// WalletBalance is the body of GET /wallet/balance.
type WalletBalance struct {
	Confirmed   float64 `json:"confirmed"`
	Unconfirmed float64 `json:"unconfirmed"`
}

// ExchangeRates maps currency codes to the daemon's coin rate.
type ExchangeRates map[string]float64

// Address is the body of GET /wallet/address.
type Address struct {
	Address string `json:"address"`
}

// Fee levels accepted by /wallet/spend.
const (
	FeeLevelEconomic = "ECONOMIC"
	FeeLevelNormal   = "NORMAL"
)

// SpendRequest is the body of POST /wallet/spend. Amount is in satoshis.
type SpendRequest struct {
	Address  string `json:"address"`
	Amount   int64  `json:"amount"`
	FeeLevel string `json:"feeLevel"`
	Memo     string `json:"memo"`
}

// SpendResult is the body returned by POST /wallet/spend.
type SpendResult struct {
	Amount             float64 `json:"amount"`
	ConfirmedBalance   float64 `json:"confirmedBalance"`
	UnconfirmedBalance float64 `json:"unconfirmedBalance"`
	Memo               string  `json:"memo"`
	Timestamp          string  `json:"timestamp"`
	TxID               string  `json:"txid,omitempty"`
}

// ApplySpendDefaults fills unset fields of req. Values supplied by the caller
// always win over defaults.
func ApplySpendDefaults(req SpendRequest) SpendRequest {
	out := SpendRequest{FeeLevel: FeeLevelEconomic}
	out.Address = req.Address
	out.Amount = req.Amount
	out.Memo = req.Memo
	if req.FeeLevel != "" {
		out.FeeLevel = req.FeeLevel
	}
	return out
}
