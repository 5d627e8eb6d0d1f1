package domain

import "context"

// WriterPort records predictions, consumed by the predict and web modules
type WriterPort interface {
	Record(ctx context.Context, e Entry) error
}

// ReaderPort reads back the journal
type ReaderPort interface {
	Recent(ctx context.Context, limit int) ([]EntryDTO, error)
	Stats(ctx context.Context) (Stats, error)
}
