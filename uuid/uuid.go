package uuid

import (
	"strconv"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/imperiuse/popo/logger"
)

type (
	// UUID = uuid.UUID.
	UUID = uuid.UUID
)

// Nil - all zero fixture id, string form.
const Nil = "00000000-0000-0000-0000-000000000000"

// MustNew - YES it's panic, use in init or fixture declarations only!
func MustNew() string {
	return uuid.Must(uuid.NewV4()).String()
}

// New - random (v4) fixture id; Nil if the generator fails.
func New() string {
	uid, err := uuid.NewV4()
	if err != nil {
		logger.Log.Error("fixture uuid v4 generate error", zap.Error(err))

		return Nil
	}

	return uid.String()
}

// FromSeq - deterministic (v5) fixture id for a factory name and sequence number,
// so fixtures built twice with the same seq compare equal.
func FromSeq(name string, seq int) string {
	return uuid.NewV5(uuid.NamespaceOID, name+"#"+strconv.Itoa(seq)).String()
}

// Valid _ .
func Valid(s string) bool {
	_, err := uuid.FromString(s)

	return err == nil
}
