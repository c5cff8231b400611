package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history straight
// from the database, aggregating item counts in SQL rather than loading
// aggregates.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history reads.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. An unknown customer id yields an empty slice,
// not an error: the read side does not distinguish "no customer" from
// "no orders".
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.order_date,
			COUNT(i.id),
			o.total_amount,
			o.tracking_number
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ? AND o.deleted_at IS NULL
		GROUP BY o.id, o.status, o.order_date, o.total_amount, o.tracking_number
		ORDER BY o.order_date DESC, o.id DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		err = rows.Scan(
			&resp.OrderID,
			&resp.Status,
			&resp.OrderDate,
			&resp.ItemCount,
			&resp.TotalAmount,
			&resp.TrackingNumber,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
