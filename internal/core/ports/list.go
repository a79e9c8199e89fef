package ports

// ListOptions controls listing queries. IncludeDeleted widens the default
// not-deleted visibility filter and is reserved for admin audit reads; the
// HTTP layer rejects it for any other role before the service is called.
type ListOptions struct {
	Search         string
	IncludeDeleted bool
}
