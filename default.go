package barajar

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

var (
	defaultOnce sync.Once
	defaultSrc  *Locked
)

// Default returns the process-wide source used when no Source is given.
// It is built on first use from system entropy and is safe for concurrent use.
func Default() Source {
	defaultOnce.Do(func() {
		defaultSrc = NewLocked(New(entropySeed()))
	})
	return defaultSrc
}

func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
