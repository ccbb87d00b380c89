package model

import (
	"unicode"

	"github.com/pkg/errors"
)

const playerUUIDLength = 36

var (
	// ErrUUIDNotASCII is returned when a player UUID contains bytes outside the ASCII range.
	ErrUUIDNotASCII = errors.New("player uuid contains non-ascii characters")

	// ErrUUIDLength is returned when a player UUID is not exactly 36 characters long.
	ErrUUIDLength = errors.New("player uuid must be exactly 36 characters long")
)

// PlayerUUID is the canonical identity of a player: a 36-character ASCII
// string in the hyphenated layout the game data server stores. The value is
// immutable and comparable, so it can be used directly as a map key.
type PlayerUUID [playerUUIDLength]byte

// ParsePlayerUUID validates raw and converts it into a PlayerUUID. Encoding
// is checked before length, so a 36-rune non-ASCII string is reported as an
// encoding failure rather than a length one.
func ParsePlayerUUID(raw string) (PlayerUUID, error) {
	var uuid PlayerUUID
	for i := 0; i < len(raw); i++ {
		if raw[i] > unicode.MaxASCII {
			return uuid, errors.Wrapf(ErrUUIDNotASCII, "uuid %q", raw)
		}
	}
	if len(raw) != playerUUIDLength {
		return uuid, errors.Wrapf(ErrUUIDLength, "uuid %q is %d characters", raw, len(raw))
	}
	copy(uuid[:], raw)
	return uuid, nil
}

func (u PlayerUUID) String() string {
	return string(u[:])
}
