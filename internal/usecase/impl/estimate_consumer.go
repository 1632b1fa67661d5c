package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
	"storefront/internal/util"
)

type estimateConsumer struct {
	productID entity.ProductID
	variant   usecase.BannerVariant

	store     usecase.LocationStore
	checker   usecase.ServiceabilityChecker
	estimator usecase.DeliveryEstimator
	logger    *slog.Logger

	// ctx outlives the request that mounted the surface.
	ctx context.Context

	mu          sync.Mutex
	display     usecase.Display
	lastPincode entity.Pincode
	gen         util.Generation

	unsubscribeLocation func()
	unsubscribeVerdict  func()
}

func newEstimateConsumer(
	ctx context.Context,
	productID entity.ProductID,
	variant usecase.BannerVariant,
	store usecase.LocationStore,
	checker usecase.ServiceabilityChecker,
	estimator usecase.DeliveryEstimator,
	logger *slog.Logger,
) *estimateConsumer {
	c := &estimateConsumer{
		productID: productID,
		variant:   variant,
		store:     store,
		checker:   checker,
		estimator: estimator,
		logger:    logger.With(slog.Int64("product_id", int64(productID))),
		ctx:       context.WithoutCancel(ctx),
		display:   usecase.Display{Kind: usecase.DisplayNone, Variant: variant},
	}

	c.unsubscribeLocation = store.Subscribe(func(*entity.Location) { c.evaluate(c.ctx, false) })
	c.unsubscribeVerdict = checker.Subscribe(func(entity.ServiceabilityVerdict) { c.evaluate(c.ctx, false) })
	c.evaluate(c.ctx, false)

	return c
}

func (c *estimateConsumer) ProductID() entity.ProductID {
	return c.productID
}

func (c *estimateConsumer) Display() usecase.Display {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.display
}

// Refresh re-requests the estimate even if the pincode has not changed.
func (c *estimateConsumer) Refresh(ctx context.Context) {
	c.evaluate(context.WithoutCancel(ctx), true)
}

func (c *estimateConsumer) Close() {
	c.unsubscribeLocation()
	c.unsubscribeVerdict()

	c.mu.Lock()
	c.gen.Close()
	c.mu.Unlock()
}

// evaluate derives the display from the store and the verdict. While the verdict is
// being checked, or belongs to another pincode, the current display is kept.
func (c *estimateConsumer) evaluate(ctx context.Context, force bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen.Closed() {
		return
	}

	location, ok := c.store.Current()
	verdict := c.checker.Verdict()

	switch {
	case !ok || !location.HasLocation():
		c.reset()
		c.show(usecase.Display{Kind: usecase.DisplayNoLocation})
	case !location.Pincode.Valid():
		c.reset()
		c.show(usecase.Display{Kind: usecase.DisplayNone})
	case verdict.Pincode != location.Pincode || verdict.Checking:
		// Keep the display, but a request for another pincode must not land.
		if location.Pincode != c.lastPincode {
			c.reset()
		}
	case !verdict.IsServiceable:
		c.reset()
		c.show(usecase.Display{Kind: usecase.DisplayUnserviceable, Message: verdict.Message})
	case location.Pincode == c.lastPincode && !force:
	default:
		c.lastPincode = location.Pincode
		token := c.gen.Next()

		go c.fetch(ctx, token, location.Pincode)
	}
}

func (c *estimateConsumer) fetch(ctx context.Context, token util.Token, pincode entity.Pincode) {
	estimate, err := c.estimator.CheckEstimate(ctx, pincode, c.productID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !token.Valid() {
		c.logger.Debug("Discarding stale delivery estimate", slog.String("pincode", pincode.String()))

		return
	}

	switch {
	case err != nil:
		c.logger.Warn("Delivery estimate request failed",
			slog.String("pincode", pincode.String()),
			slog.Any("error", err),
		)
		c.show(usecase.Display{Kind: usecase.DisplayNotDeliverable, Reason: err.Error()})
	case !estimate.Success:
		c.show(usecase.Display{Kind: usecase.DisplayNotDeliverable, Estimate: &estimate, Reason: estimate.Error})
	default:
		c.show(usecase.Display{Kind: usecase.DisplayEstimate, Estimate: &estimate})
	}
}

// reset forgets the last requested pincode and drops any request in flight.
func (c *estimateConsumer) reset() {
	c.lastPincode = ""
	c.gen.Invalidate()
}

func (c *estimateConsumer) show(display usecase.Display) {
	display.Variant = c.variant
	display.ChangeLocation = c.variant == usecase.BannerFull && display.Kind != usecase.DisplayNone
	c.display = display
}
