package service

import "context"

// ID identifies a single resource item. It is bound from the URL path and
// accepted as-is: zero and negative values are valid.
type ID int32

// Placeholder values returned by the read operations.
const (
	ListValue1 = "value1"
	ListValue2 = "value2"
	ItemValue  = "value"
)

// ResourceService defines the operations exposed for the resource collection.
type ResourceService interface {
	// List returns the whole collection, always in the same order.
	List(ctx context.Context) ([]string, error)

	// Get returns a single item. The id does not select the result.
	Get(ctx context.Context, id ID) (string, error)

	// Create accepts a new item. The payload is discarded.
	Create(ctx context.Context, value string) error

	// Update accepts a replacement for an item. The payload is discarded.
	Update(ctx context.Context, id ID, value string) error

	// Delete removes an item. Nothing is stored, so nothing changes.
	Delete(ctx context.Context, id ID) error
}

// placeholderService answers every operation with fixed values and holds no state.
// It is safe for concurrent use.
type placeholderService struct{}

// NewResourceService constructs the placeholder ResourceService.
func NewResourceService() ResourceService {
	return placeholderService{}
}

func (placeholderService) List(context.Context) ([]string, error) {
	// Fresh slice per call so callers cannot alter later responses.
	return []string{ListValue1, ListValue2}, nil
}

func (placeholderService) Get(context.Context, ID) (string, error) {
	return ItemValue, nil
}

func (placeholderService) Create(context.Context, string) error { return nil }

func (placeholderService) Update(context.Context, ID, string) error { return nil }

func (placeholderService) Delete(context.Context, ID) error { return nil }
