package checkout

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/primecart/internal/catalog"
	"github.com/your-org/primecart/internal/config"
	"github.com/your-org/primecart/internal/domain/cart"
	"github.com/your-org/primecart/internal/infrastructure/storage"
	"github.com/your-org/primecart/internal/pkg/notify"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Store.TaxRate = 0.08
	cfg.Store.CheckoutDelay = 5 * time.Millisecond
	return cfg
}

func testCart(cfg *config.Config) *cart.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	adapter := storage.NewAdapter(storage.NewMemoryBackend(), logger)
	return cart.NewService(adapter, &notify.Recorder{}, cfg)
}

func validForm() Form {
	return Form{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Address:       "12 Analytical Way",
		City:          "London",
		Zip:           "N1 9GU",
		PaymentMethod: PaymentCard,
	}
}

func TestValidate_EmptyFormYieldsSixErrors(t *testing.T) {
	errs := Validate(Form{})

	assert.Len(t, errs, 6)
	for _, field := range []string{"first_name", "last_name", "email", "address", "city", "zip"} {
		assert.Contains(t, errs, field)
	}
}

func TestValidate_BlankAfterTrimIsMissing(t *testing.T) {
	form := validForm()
	form.City = "   "

	errs := Validate(form)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "city")
}

func TestValidate_InvalidEmailYieldsExactlyEmailError(t *testing.T) {
	form := validForm()
	form.Email = "nope"

	errs := Validate(form)
	assert.Len(t, errs, 1)
	assert.Equal(t, "Invalid email address", errs["email"])
}

func TestValidate_EmailShapes(t *testing.T) {
	cases := map[string]bool{
		"ada@example.com":  true,
		"a@b.co":           true,
		"nope":             false,
		"no@tld":           false,
		"spaces in@it.com": false,
		"@example.com":     false,
		"ada@.":            false,
	}

	for email, valid := range cases {
		form := validForm()
		form.Email = email
		errs := Validate(form)
		if valid {
			assert.Empty(t, errs, "expected %q to be valid", email)
		} else {
			assert.Contains(t, errs, "email", "expected %q to be invalid", email)
		}
	}
}

func TestValidate_FullyValidFormYieldsZeroErrors(t *testing.T) {
	assert.Empty(t, Validate(validForm()))
}

func TestSubmit_EmptyCartIsBlocked(t *testing.T) {
	cfg := testConfig()
	s := NewService(testCart(cfg), &notify.Recorder{}, cfg)

	err := s.Submit(context.Background(), validForm())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StatusEditing, s.Status())
}

func TestSubmit_ValidationErrorsBlockWithoutStateChange(t *testing.T) {
	cfg := testConfig()
	cartStore := testCart(cfg)
	cartStore.AddItem(catalog.Product{ID: 1, Price: 10}, 1)

	s := NewService(cartStore, &notify.Recorder{}, cfg)

	err := s.Submit(context.Background(), Form{})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 6)
	assert.Equal(t, StatusEditing, s.Status())
	assert.Equal(t, 1, cartStore.Count())
}

func TestSubmit_CompletesAndClearsCart(t *testing.T) {
	cfg := testConfig()
	cartStore := testCart(cfg)
	cartStore.AddItem(catalog.Product{ID: 1, Price: 10}, 2)
	cartStore.AddItem(catalog.Product{ID: 2, Price: 5.5}, 1)

	s := NewService(cartStore, &notify.Recorder{}, cfg)

	err := s.Submit(context.Background(), validForm())

	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, s.Status())
	assert.Zero(t, cartStore.Count())
}

func TestSubmit_NotifiesWithOrderTotal(t *testing.T) {
	cfg := testConfig()
	cartStore := testCart(cfg)
	cartStore.AddItem(catalog.Product{ID: 1, Price: 10}, 2)
	cartStore.AddItem(catalog.Product{ID: 2, Price: 5.5}, 1)

	recorder := &notify.Recorder{}
	s := NewService(cartStore, recorder, cfg)

	assert.NoError(t, s.Submit(context.Background(), validForm()))
	assert.Contains(t, recorder.Messages, "Order placed: $27.54")
}

func TestSubmit_CancellationReturnsToEditing(t *testing.T) {
	cfg := testConfig()
	cfg.Store.CheckoutDelay = time.Minute

	cartStore := testCart(cfg)
	cartStore.AddItem(catalog.Product{ID: 1, Price: 10}, 1)

	s := NewService(cartStore, &notify.Recorder{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Submit(ctx, validForm())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusEditing, s.Status())
	assert.Equal(t, 1, cartStore.Count())
}

func TestSubmit_CompletedIsTerminal(t *testing.T) {
	cfg := testConfig()
	cartStore := testCart(cfg)
	cartStore.AddItem(catalog.Product{ID: 1, Price: 10}, 1)

	s := NewService(cartStore, &notify.Recorder{}, cfg)

	assert.NoError(t, s.Submit(context.Background(), validForm()))

	cartStore.AddItem(catalog.Product{ID: 2, Price: 5}, 1)
	err := s.Submit(context.Background(), validForm())

	assert.ErrorIs(t, err, ErrNotEditing)
	assert.Equal(t, StatusCompleted, s.Status())
}

func TestReset_ReturnsCompletedToEditing(t *testing.T) {
	cfg := testConfig()
	cartStore := testCart(cfg)
	cartStore.AddItem(catalog.Product{ID: 1, Price: 10}, 1)

	s := NewService(cartStore, &notify.Recorder{}, cfg)
	assert.NoError(t, s.Submit(context.Background(), validForm()))

	s.Reset()
	assert.Equal(t, StatusEditing, s.Status())
}

func TestReset_DoesNothingWhileEditing(t *testing.T) {
	cfg := testConfig()
	s := NewService(testCart(cfg), &notify.Recorder{}, cfg)

	s.Reset()
	assert.Equal(t, StatusEditing, s.Status())
}
