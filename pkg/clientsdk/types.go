package clientsdk

// Client mirrors the API's client record. Dates travel as "YYYY-MM-DD"
// strings; a nil EndDate means the engagement is ongoing.
type Client struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        *string  `json:"address"`
	ClientCategory string   `json:"clientCategory"`
	BusinessName   *string  `json:"businessName"`
	StartDate      string   `json:"startDate"`
	EndDate        *string  `json:"endDate"`
	Fee            float64  `json:"fee"`
	PaymentStatus  string   `json:"paymentStatus"`
	ClientStatus   string   `json:"clientStatus"`
	HoursSigned    *float64 `json:"hoursSigned"`
	HoursUsed      *float64 `json:"hoursUsed"`
}

// ClientPayload is the body for create and update calls. Update is a full
// replacement: the server writes omitted optional fields as null.
type ClientPayload struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        *string  `json:"address,omitempty"`
	ClientCategory string   `json:"clientCategory"`
	BusinessName   *string  `json:"businessName,omitempty"`
	StartDate      string   `json:"startDate"`
	EndDate        *string  `json:"endDate,omitempty"`
	Fee            float64  `json:"fee"`
	PaymentStatus  string   `json:"paymentStatus,omitempty"`
	ClientStatus   string   `json:"clientStatus,omitempty"`
	HoursSigned    *float64 `json:"hoursSigned,omitempty"`
	HoursUsed      *float64 `json:"hoursUsed,omitempty"`
}

// TokenResponse is the identity provider's token grant response.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// MessageResponse is the body returned by delete calls.
type MessageResponse struct {
	Message string `json:"message"`
}
