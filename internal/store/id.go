package store

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// NewRecordID produces a short, URL-safe record identifier: a base-36
// millisecond timestamp followed by a base-36 random 32-bit suffix.
// IDs are coarsely time-ordered and collision-resistant at classroom
// volume (tens to low thousands of records per session).
func NewRecordID() string {
	var buf [4]byte
	_, _ = rand.Read(buf[:]) // never fails per crypto/rand docs

	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatUint(uint64(binary.BigEndian.Uint32(buf[:])), 36)
	return ts + suffix
}
