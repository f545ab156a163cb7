package postgres

import "github.com/oklog/ulid/v2"

// ULIDGenerator issues ULIDs for accounts and transactions. ULIDs embed their
// creation time in the prefix, so ids minted later sort lexicographically
// after earlier ones.
type ULIDGenerator struct{}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
