package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"
)

type serviceabilityChecker struct {
	store  usecase.LocationStore
	api    service.ServiceabilityAPI
	logger *slog.Logger

	// ctx bounds checks started from store notifications; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	verdict     entity.ServiceabilityVerdict
	lastPincode entity.Pincode
	gen         util.Generation

	observers   observers[entity.ServiceabilityVerdict]
	unsubscribe func()
}

// NewServiceabilityChecker creates the checker and subscribes it to the store.
// It must be constructed before any consumer so consumers observe its verdict for a pincode first.
func NewServiceabilityChecker(
	store usecase.LocationStore,
	api service.ServiceabilityAPI,
	logger *slog.Logger,
) usecase.ServiceabilityChecker {
	ctx, cancel := context.WithCancel(context.Background())
	c := &serviceabilityChecker{
		store:   store,
		api:     api,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		verdict: entity.DefaultVerdict(),
	}
	c.unsubscribe = store.Subscribe(c.onLocation)

	return c
}

func (c *serviceabilityChecker) Verdict() entity.ServiceabilityVerdict {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.verdict
}

func (c *serviceabilityChecker) Subscribe(observer usecase.VerdictObserver) func() {
	return c.observers.add(observer)
}

// Check runs a check for pincode and waits for the answer. Only a check for the
// store's own pincode becomes the published verdict; any other pincode is answered
// without touching it.
func (c *serviceabilityChecker) Check(ctx context.Context, pincode entity.Pincode) entity.ServiceabilityVerdict {
	if current, _ := c.store.Current(); current.Pincode != pincode {
		if !pincode.Valid() {
			return entity.DefaultVerdict()
		}

		return c.query(ctx, pincode)
	}

	token, verdict, ok := c.begin(pincode)
	if !ok {
		return verdict
	}

	return c.resolve(ctx, token, pincode)
}

// Close stops reacting to the store and discards checks still in flight.
func (c *serviceabilityChecker) Close() {
	c.unsubscribe()
	c.gen.Close()
	c.cancel()
}

// onLocation reacts to store mutations. Only a pincode change triggers a check.
func (c *serviceabilityChecker) onLocation(location *entity.Location) {
	var pincode entity.Pincode
	if location != nil {
		pincode = location.Pincode
	}

	c.mu.Lock()
	changed := pincode != c.lastPincode
	c.mu.Unlock()
	if !changed {
		return
	}

	token, _, ok := c.begin(pincode)
	if !ok {
		return
	}

	go c.resolve(c.ctx, token, pincode)
}

// begin records pincode as the subject of the next check and publishes the interim verdict.
// It reports false when no backend call is needed.
func (c *serviceabilityChecker) begin(pincode entity.Pincode) (util.Token, entity.ServiceabilityVerdict, bool) {
	c.mu.Lock()
	c.lastPincode = pincode

	if !pincode.Valid() {
		c.gen.Invalidate()
		c.verdict = entity.DefaultVerdict()
		verdict := c.verdict
		c.mu.Unlock()

		c.observers.notify(verdict)

		return util.Token{}, verdict, false
	}

	token := c.gen.Next()
	c.verdict = entity.ServiceabilityVerdict{
		IsServiceable: true,
		Checking:      true,
		State:         entity.ServiceabilityChecking,
		Pincode:       pincode,
	}
	verdict := c.verdict
	c.mu.Unlock()

	c.observers.notify(verdict)

	return token, verdict, true
}

// resolve calls the backend and publishes the verdict if token is still current.
func (c *serviceabilityChecker) resolve(ctx context.Context, token util.Token, pincode entity.Pincode) entity.ServiceabilityVerdict {
	verdict := c.query(ctx, pincode)

	c.mu.Lock()
	if !token.Valid() {
		c.mu.Unlock()
		c.logger.Debug("Discarding stale serviceability result", slog.String("pincode", pincode.String()))

		return verdict
	}
	c.verdict = verdict
	c.mu.Unlock()

	c.observers.notify(verdict)

	return verdict
}

// query asks the backend about pincode. A transport failure fails open.
func (c *serviceabilityChecker) query(ctx context.Context, pincode entity.Pincode) entity.ServiceabilityVerdict {
	var verdict entity.ServiceabilityVerdict

	result, err := c.api.CheckServiceability(ctx, pincode)
	switch {
	case err != nil:
		c.logger.Warn("Serviceability check failed, assuming serviceable",
			slog.String("pincode", pincode.String()),
			slog.Any("error", err),
		)
		verdict = entity.ServiceabilityVerdict{
			IsServiceable: true,
			State:         entity.ServiceabilityFailedOpen,
			Pincode:       pincode,
		}
	case result.Serviceable:
		verdict = entity.ServiceabilityVerdict{
			IsServiceable: true,
			State:         entity.ServiceabilityServiceable,
			Pincode:       pincode,
		}
	default:
		c.logger.Info("Pincode is not serviceable",
			slog.String("pincode", pincode.String()),
			slog.String("message", result.Message),
		)
		verdict = entity.ServiceabilityVerdict{
			IsServiceable: false,
			Message:       result.Message,
			State:         entity.ServiceabilityUnserviceable,
			Pincode:       pincode,
		}
	}

	return verdict
}
