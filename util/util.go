package util

import (
	"math/rand"
	"strconv"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewUniqueID returns a timestamp-plus-random identifier like
// "m1x2c3-k9f2ab8d1e3c7". Millisecond timestamp in base36 keeps IDs
// roughly sortable by creation time.
func NewUniqueID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	b := make([]byte, 13)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return ts + "-" + string(b)
}
