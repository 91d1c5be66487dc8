package dispatch

import "errors"

var (
	// ErrNotFound indicates the target entity is absent from the mirror.
	ErrNotFound = errors.New("entity not found in store")

	// ErrUnknownKind indicates a kind that resolves to no collection.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrSignalCreate indicates an attempt to create a signal locally;
	// signals originate in the external capture tool only.
	ErrSignalCreate = errors.New("signals are owned by the signal service and cannot be created here")

	// ErrConvertedSignal indicates a patch touching status or projectId on a
	// signal that has already been converted. Converted signals are immutable
	// with respect to both fields; other fields stay editable.
	ErrConvertedSignal = errors.New("converted signals cannot change status or projectId")
)
