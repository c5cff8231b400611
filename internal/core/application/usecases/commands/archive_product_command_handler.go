package commands

import (
	"context"
)

// ArchiveProductCommandHandler soft-deletes a product and drops its cached
// snapshot. The cache entry goes only after the commit: dropping it for a
// rolled-back delete would be harmless, the reverse would serve a deleted
// product until the TTL expires.
type ArchiveProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ProductCacheInvalidator
}

// NewArchiveProductCommandHandler creates a handler for product archival.
func NewArchiveProductCommandHandler(
	uowFactory ProductUoWFactory,
	cache ProductCacheInvalidator,
) ArchiveProductCommandHandler {
	return ArchiveProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle archives the product. A missing or already archived product fails
// with ObjectNotFoundError.
func (h ArchiveProductCommandHandler) Handle(ctx context.Context, cmd ArchiveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return h.cache.Invalidate(ctx, cmd.ProductID())
}
