package usecase

// IDGenerator mints opaque identifiers (payment references, withdrawal
// references).
type IDGenerator interface {
	NewID() string
}
