package mt

import (
	"encoding/binary"
	"fmt"

	"github.com/gofrs/uuid"
)

// SeedEntropy seeds the engine from a random V4 UUID, split into four
// little-endian key words and fed to SeedArray.
func (e *Engine) SeedEntropy() error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("mt: reading entropy: %w", err)
	}
	e.SeedArray(entropyKey(id))
	return nil
}

func entropyKey(id uuid.UUID) []uint32 {
	key := make([]uint32, 4)
	for i := range key {
		key[i] = binary.LittleEndian.Uint32(id[i*4 : i*4+4])
	}
	return key
}

// seedFromEntropy is the implicit seeding done on the first draw from an
// unseeded engine. The entropy source failing leaves no sane fallback.
func (e *Engine) seedFromEntropy() {
	if err := e.SeedEntropy(); err != nil {
		panic(err)
	}
}
