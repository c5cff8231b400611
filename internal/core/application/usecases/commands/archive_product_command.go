package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrArchiveProductCommandIsNotConstructed = errors.New(
	"ArchiveProductCommand must be created via NewArchiveProductCommand constructor",
)

// ArchiveProductCommand represents a request to retire a product from the
// catalog. The row is soft-deleted: default-scope reads stop seeing it, but
// existing order items keep their snapshots and the row stays recoverable.
type ArchiveProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewArchiveProductCommand creates a command to archive a product.
func NewArchiveProductCommand(productID int64) (ArchiveProductCommand, error) {
	cmd := ArchiveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return ArchiveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveProductCommand) Validate() error {
	return c.guard.Validate(ErrArchiveProductCommandIsNotConstructed)
}

// ProductID returns the id of the product to archive.
func (c ArchiveProductCommand) ProductID() int64 {
	return c.productID
}

func (c *ArchiveProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}
