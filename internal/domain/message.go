package domain

import "time"

// Category is the formatting axis of a message: it decides how the body is
// prefixed before it is handed to a delivery channel.
type Category string

const (
	CategorySimple Category = "simple"
	CategoryUrgent Category = "urgent"
)

func (c Category) IsValid() bool {
	switch c {
	case CategorySimple, CategoryUrgent:
		return true
	}
	return false
}

// Prefix returns the fixed text prepended to the body for this category.
func (c Category) Prefix() string {
	switch c {
	case CategorySimple:
		return "Mensagem Simples: "
	case CategoryUrgent:
		return "*** URGENTE *** "
	}
	return ""
}

// Format applies the category's textual transformation to body.
// Pure function: the same body always yields the same result.
func (c Category) Format(body string) string {
	return c.Prefix() + body
}

// Categories lists every valid category, in catalog order.
func Categories() []Category {
	return []Category{CategorySimple, CategoryUrgent}
}

// Medium is the delivery axis of a message: which channel transmits it.
type Medium string

const (
	MediumEmail Medium = "email"
	MediumSMS   Medium = "sms"
)

func (m Medium) IsValid() bool {
	switch m {
	case MediumEmail, MediumSMS:
		return true
	}
	return false
}

// Label returns the text a channel prepends to every transmitted line.
func (m Medium) Label() string {
	switch m {
	case MediumEmail:
		return "Enviando email"
	case MediumSMS:
		return "Enviando SMS"
	}
	return ""
}

// Media lists every valid medium, in catalog order.
func Media() []Medium {
	return []Medium{MediumEmail, MediumSMS}
}

// MaxBodyBytes caps the body length accepted over HTTP.
// The core library itself places no limit on body length.
const MaxBodyBytes = 4096

// DispatchRequest is the inbound payload for a single dispatch.
type DispatchRequest struct {
	Category Category `json:"category"`
	Medium   Medium   `json:"medium"`
	Body     string   `json:"body"`
}

// Validate checks the two axes. An empty body is legal on every combination.
func (r *DispatchRequest) Validate() error {
	if !r.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !r.Medium.IsValid() {
		return ErrInvalidMedium
	}
	if len(r.Body) > MaxBodyBytes {
		return ErrBodyTooLarge
	}
	return nil
}

// Delivery is the receipt returned for a successful dispatch. Nothing is
// stored; the receipt exists only in the response.
type Delivery struct {
	ID           string    `json:"id"`
	Category     Category  `json:"category"`
	Medium       Medium    `json:"medium"`
	Body         string    `json:"body"`
	Line         string    `json:"line"`
	DispatchedAt time.Time `json:"dispatched_at"`
}
