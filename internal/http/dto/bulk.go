package dto

// IDsRequest is the body of every bulk mutation endpoint.
type IDsRequest[K comparable] struct {
	IDs []K `json:"ids"`
}

type BulkDeletedResponse[K comparable] struct {
	Message    string `json:"message"`
	DeletedIDs []K    `json:"deletedIds"`
}

type BulkRestoredResponse[K comparable] struct {
	Message     string `json:"message"`
	RestoredIDs []K    `json:"restoredIds"`
}

// CreatedResponse mirrors the single-create reply: one element carrying the
// generated id.
type CreatedResponse[K comparable] struct {
	ID K `json:"id"`
}
