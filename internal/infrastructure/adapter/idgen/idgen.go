package idgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Supported schemes
const (
	SchemeULID   = "ulid"
	SchemeUUIDv7 = "uuidv7"
)

// ULIDGenerator produces lowercase monotonic ULIDs. IDs created within the
// same millisecond increase by a random increment, so they stay unique and
// sortable across rapid successive calls.
type ULIDGenerator struct {
	mu      sync.Mutex
	clock   core.TimeProvider
	entropy io.Reader
}

// NewULIDGenerator creates a ULID generator reading timestamps from clock
func NewULIDGenerator(clock core.TimeProvider) *ULIDGenerator {
	return &ULIDGenerator{
		clock:   clock,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewID returns the next ULID
func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.clock.Now()), g.entropy)
	if err != nil {
		// Monotonic entropy overflows only after 2^80 IDs in one millisecond
		panic(fmt.Sprintf("generate ulid: %v", err))
	}
	return strings.ToLower(id.String())
}

// UUIDv7Generator produces time-ordered UUIDs
type UUIDv7Generator struct{}

// NewUUIDv7Generator creates a UUIDv7 generator
func NewUUIDv7Generator() *UUIDv7Generator {
	return &UUIDv7Generator{}
}

// NewID returns a new UUIDv7
func (g *UUIDv7Generator) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// New returns the generator for a configured scheme
func New(scheme string, clock core.TimeProvider) (core.IDGenerator, error) {
	switch scheme {
	case "", SchemeULID:
		return NewULIDGenerator(clock), nil
	case SchemeUUIDv7:
		return NewUUIDv7Generator(), nil
	default:
		return nil, fmt.Errorf("unsupported id scheme: %s", scheme)
	}
}
