// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/domain/cart"
	"github.com/your-org/primecart/internal/pkg/format"
	"github.com/your-org/primecart/internal/pkg/notify"
)

// Status represents the checkout workflow state
type Status string

// Workflow states. Completed is terminal for the session: nothing is
// persisted, a restart returns to Editing.
const (
	StatusEditing    Status = "editing"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// Payment methods. The method is constrained to this set by construction
// and is not independently validated.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
)

// ErrEmptyCart blocks checkout when there is nothing to check out. It is a
// distinct condition, not a validation error.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrNotEditing rejects a submit while a previous one is processing or
// after completion.
var ErrNotEditing = errors.New("checkout: submission already in progress or completed")

// ValidationError carries the per-field messages of a rejected form
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "checkout: form validation failed"
}

// Form represents the shipping and payment details entered at checkout
type Form struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	PaymentMethod string `json:"payment_method"`
}

// local@domain.tld shape; deliberately not RFC-5322-grade.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the form and returns a mapping of field name to error
// message. An empty map means the form is valid.
func Validate(form Form) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(form.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		errs["email"] = "Invalid email address"
	}
	if strings.TrimSpace(form.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(form.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(form.Zip) == "" {
		errs["zip"] = "ZIP code is required"
	}

	return errs
}

// Service runs the checkout workflow over the cart store: Editing until a
// valid submit, Processing for a simulated delay, then Completed with the
// cart cleared. No order record is created anywhere.
type Service struct {
	mu       sync.Mutex
	cart     *cart.Service
	notifier notify.Notifier
	delay    time.Duration
	status   Status
}

// NewService creates a checkout service in the Editing state
func NewService(cartService *cart.Service, notifier notify.Notifier, cfg *config.Config) *Service {
	return &Service{
		cart:     cartService,
		notifier: notifier,
		delay:    cfg.Store.CheckoutDelay,
		status:   StatusEditing,
	}
}

// Status returns the current workflow state
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submit validates the form and, if it passes, runs the simulated order
// processing: Processing for the configured delay, then the cart is
// cleared and the state becomes Completed. A cancelled context during the
// delay returns the workflow to Editing with the cart intact.
func (s *Service) Submit(ctx context.Context, form Form) error {
	s.mu.Lock()
	if s.status != StatusEditing {
		s.mu.Unlock()
		return ErrNotEditing
	}

	if s.cart.Count() == 0 {
		s.mu.Unlock()
		return ErrEmptyCart
	}

	if errs := Validate(form); len(errs) > 0 {
		s.mu.Unlock()
		return &ValidationError{Fields: errs}
	}

	s.status = StatusProcessing
	total := s.cart.Total()
	s.mu.Unlock()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.mu.Lock()
		s.status = StatusEditing
		s.mu.Unlock()
		return ctx.Err()
	case <-timer.C:
	}

	s.cart.Clear()

	s.mu.Lock()
	s.status = StatusCompleted
	s.mu.Unlock()

	s.notifier.Success("Order placed: " + format.Price(total))
	return nil
}

// Reset returns a completed workflow to Editing, the session analogue of
// navigating away from the confirmation screen.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusCompleted {
		s.status = StatusEditing
	}
}
