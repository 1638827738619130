package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/logging"
	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/repositories/purchases"
)

// State labels the entitlement state machine.
type State string

const (
	StateUnknown     State = "unknown"
	StateNotEntitled State = "not_entitled"
	StatePurchasing  State = "purchasing"
	StateEntitled    State = "entitled"
)

// Manager owns the in-memory entitlement flag and orchestrates the
// purchases repository (durability) and the payment capability (the actual
// transaction). The repository's purchase record is the source of truth;
// the flag is a fast cache restored on every start.
type Manager struct {
	mu       sync.Mutex
	state    State
	inFlight bool

	repo       purchases.Repository
	capability PaymentCapability
	log        logging.Logger

	// onEntitled is notified once per flip into StateEntitled, never twice
	// in one session.
	onEntitled func()

	now func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithEntitledListener registers the feature-gate callback run when the
// manager enters the entitled state.
func WithEntitledListener(fn func()) Option {
	return func(m *Manager) { m.onEntitled = fn }
}

// WithClock overrides the time source; used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager returns a manager in StateUnknown. Call Restore before
// consulting IsEntitled.
func NewManager(repo purchases.Repository, capability PaymentCapability, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		state:      StateUnknown,
		repo:       repo,
		capability: capability,
		log:        log.With("component", "billing"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state label.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsEntitled reports the cached entitlement flag.
func (m *Manager) IsEntitled() bool {
	return m.State() == StateEntitled
}

// Restore initializes entitlement from the durable purchase record. It is
// idempotent and safe to call on every app start: a purchased record for
// the pro product yields StateEntitled, any other outcome (absence, or a
// record in a non-purchased status) yields StateNotEntitled.
func (m *Manager) Restore(ctx context.Context) error {
	p, err := m.repo.Find(ctx, common.ProductIDPro)
	if errors.Is(err, common.ErrNotFound) {
		m.markNotEntitled()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to restore entitlement: %w", err)
	}

	if p.Status == models.PurchaseStatusPurchased {
		m.setEntitled(ctx)
	} else {
		m.log.Warn(ctx, "purchase record not in purchased status", "status", p.Status)
		m.markNotEntitled()
	}
	return nil
}

// markNotEntitled settles an unknown state without ever downgrading an
// entitlement granted earlier in the session.
func (m *Manager) markNotEntitled() {
	m.mu.Lock()
	if m.state != StateEntitled {
		m.state = StateNotEntitled
	}
	m.mu.Unlock()
}

// Purchase runs the purchase flow for the pro product.
//
// Guards: a call while a purchase is already in flight is a silent no-op
// and never reaches the payment capability; a call while already entitled
// fails with common.ErrAlreadyEntitled. On success the purchase record is
// written before the in-memory flag flips, so a crash in between still
// leaves durable proof recoverable by the next Restore. User cancellation
// is swallowed; any other capability error wraps common.ErrPurchaseFailed.
func (m *Manager) Purchase(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateEntitled {
		m.mu.Unlock()
		return common.ErrAlreadyEntitled
	}
	if m.inFlight {
		m.mu.Unlock()
		m.log.Debug(ctx, "purchase already in flight, ignoring")
		return nil
	}
	m.inFlight = true
	m.state = StatePurchasing
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	res, err := m.capability.Purchase(ctx, common.ProductIDPro)
	if err != nil {
		m.mu.Lock()
		m.state = StateNotEntitled
		m.mu.Unlock()

		if errors.Is(err, common.ErrPurchaseCancelled) {
			m.log.Info(ctx, "purchase cancelled by user")
			return nil
		}
		return fmt.Errorf("%w: %w", common.ErrPurchaseFailed, err)
	}

	record := &models.Purchase{
		ProductID: common.ProductIDPro,
		Token:     res.Token,
		Timestamp: m.now(),
		Status:    models.PurchaseStatusPurchased,
	}
	// Durability before the flag flip.
	if err := m.repo.Save(ctx, record); err != nil {
		m.mu.Lock()
		m.state = StateNotEntitled
		m.mu.Unlock()
		return fmt.Errorf("failed to persist purchase: %w", err)
	}

	if err := m.capability.Acknowledge(ctx, res.Token, common.PurchaseKindOneTime); err != nil {
		// The record is durable; the next restore keeps the entitlement.
		m.log.Warn(ctx, "failed to acknowledge purchase", "error", err)
	}

	m.setEntitled(ctx)
	return nil
}

// ProductDetails returns the payment capability's details for the pro
// product.
func (m *Manager) ProductDetails(ctx context.Context) (*ProductDetails, error) {
	details, err := m.capability.ListDetails(ctx, []string{common.ProductIDPro})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPurchaseFailed, err)
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("%w: product %s not found", common.ErrPurchaseFailed, common.ProductIDPro)
	}
	return &details[0], nil
}

// setEntitled flips the flag and notifies the feature gate exactly once per
// transition, no matter how many paths (restore, purchase) reach it.
func (m *Manager) setEntitled(ctx context.Context) {
	m.mu.Lock()
	if m.state == StateEntitled {
		m.mu.Unlock()
		return
	}
	m.state = StateEntitled
	listener := m.onEntitled
	m.mu.Unlock()

	m.log.Info(ctx, "entitlement active")
	if listener != nil {
		listener()
	}
}
