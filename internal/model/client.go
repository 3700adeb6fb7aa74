package model

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"
)

const (
	CategoryPersonal    = "Personal"
	CategoryBusiness    = "Business"
	CategoryTaxFiling   = "Tax filing"
	CategoryBookkeeping = "Bookkeeping"
	CategoryConsulting  = "Consulting"

	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"

	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
)

const dateLayout = "2006-01-02"

// Date is a calendar date carried on the wire as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	d.Time = t
	return nil
}

// Client represents a single client engagement record
type Client struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        *string  `json:"address"`
	ClientCategory string   `json:"clientCategory"`
	BusinessName   *string  `json:"businessName"`
	StartDate      Date     `json:"startDate"`
	EndDate        *Date    `json:"endDate"` // nil means the engagement is ongoing
	Fee            float64  `json:"fee"`
	PaymentStatus  string   `json:"paymentStatus"`
	ClientStatus   string   `json:"clientStatus"`
	HoursSigned    *float64 `json:"hoursSigned"`
	HoursUsed      *float64 `json:"hoursUsed"`
}

// ClientPayload is the POST/PUT request body. PUT is a full replacement:
// omitted optional fields are persisted as null, not merged with prior state.
type ClientPayload struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        *string  `json:"address"`
	ClientCategory string   `json:"clientCategory"`
	BusinessName   *string  `json:"businessName"`
	StartDate      Date     `json:"startDate"`
	EndDate        *Date    `json:"endDate"`
	Fee            *float64 `json:"fee"`
	PaymentStatus  string   `json:"paymentStatus"`
	ClientStatus   string   `json:"clientStatus"`
	HoursSigned    *float64 `json:"hoursSigned"`
	HoursUsed      *float64 `json:"hoursUsed"`
}

// FieldError describes a single invalid field in a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var clientCategories = map[string]bool{
	CategoryPersonal:    true,
	CategoryBusiness:    true,
	CategoryTaxFiling:   true,
	CategoryBookkeeping: true,
	CategoryConsulting:  true,
}

// Validate checks the payload before it reaches the store and returns one
// entry per invalid field. An empty result means the payload is storable.
// There is deliberately no rule tying hoursUsed to hoursSigned.
func (p *ClientPayload) Validate() []FieldError {
	var errs []FieldError

	if p.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if p.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(p.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "email is not a valid address"})
	}
	if p.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone is required"})
	}
	if p.StartDate.IsZero() {
		errs = append(errs, FieldError{Field: "startDate", Message: "startDate is required"})
	}
	if p.Fee == nil {
		errs = append(errs, FieldError{Field: "fee", Message: "fee is required"})
	} else if *p.Fee < 0 {
		errs = append(errs, FieldError{Field: "fee", Message: "fee must be non-negative"})
	}

	if p.ClientCategory == "" {
		errs = append(errs, FieldError{Field: "clientCategory", Message: "clientCategory is required"})
	} else if !clientCategories[p.ClientCategory] {
		errs = append(errs, FieldError{Field: "clientCategory", Message: "clientCategory must be one of Personal, Business, Tax filing, Bookkeeping, Consulting"})
	}
	if p.PaymentStatus != "" && p.PaymentStatus != PaymentStatusPaid && p.PaymentStatus != PaymentStatusPending {
		errs = append(errs, FieldError{Field: "paymentStatus", Message: "paymentStatus must be Paid or Pending"})
	}
	if p.ClientStatus != "" && p.ClientStatus != ClientStatusActive && p.ClientStatus != ClientStatusInactive {
		errs = append(errs, FieldError{Field: "clientStatus", Message: "clientStatus must be Active or Inactive"})
	}

	if p.HoursSigned != nil && *p.HoursSigned < 0 {
		errs = append(errs, FieldError{Field: "hoursSigned", Message: "hoursSigned must be non-negative"})
	}
	if p.HoursUsed != nil && *p.HoursUsed < 0 {
		errs = append(errs, FieldError{Field: "hoursUsed", Message: "hoursUsed must be non-negative"})
	}

	return errs
}

// ToClient maps a validated payload onto a Client. The caller assigns the ID.
func (p *ClientPayload) ToClient() *Client {
	c := &Client{
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		ClientCategory: p.ClientCategory,
		BusinessName:   p.BusinessName,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		PaymentStatus:  p.PaymentStatus,
		ClientStatus:   p.ClientStatus,
		HoursSigned:    p.HoursSigned,
		HoursUsed:      p.HoursUsed,
	}
	if p.Fee != nil {
		c.Fee = *p.Fee
	}
	return c
}
