package ethereum

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Entropy produces the random values used to fabricate mock chain data:
// transaction hashes, proofs, request suffixes and failure rolls.
// It is safe for concurrent use.
type Entropy struct {
	mu     sync.Mutex
	stream *rand.ChaCha8
	rng    *rand.Rand
}

// NewEntropy returns an Entropy seeded from the operating system.
func NewEntropy() *Entropy {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return NewSeededEntropy(seed)
}

// NewSeededEntropy returns a deterministic Entropy, used by tests.
func NewSeededEntropy(seed [32]byte) *Entropy {
	stream := rand.NewChaCha8(seed)
	return &Entropy{stream: stream, rng: rand.New(stream)}
}

// Float64 returns a uniform number in [0, 1).
func (e *Entropy) Float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

// Bytes returns n random bytes.
func (e *Entropy) Bytes(n int) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	b := make([]byte, n)
	_, _ = e.stream.Read(b)
	return b
}

// Hash returns a random 32-byte hash.
func (e *Entropy) Hash() common.Hash {
	return common.BytesToHash(e.Bytes(common.HashLength))
}

// TxHash returns a random 0x-prefixed 64 hex char transaction hash.
func (e *Entropy) TxHash() string {
	return e.Hash().Hex()
}

// Hex returns n random bytes as a 0x-prefixed hex string.
func (e *Entropy) Hex(n int) string {
	return hexutil.Encode(e.Bytes(n))
}

// Digits returns a string of n random decimal digits.
func (e *Entropy) Digits(n int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + e.rng.IntN(10)))
	}
	return sb.String()
}

// Token returns a short lower-case base36 token of up to n characters.
func (e *Entropy) Token(n int) string {
	s := strconv.FormatUint(binary.BigEndian.Uint64(e.Bytes(8)), 36)
	if len(s) > n {
		s = s[:n]
	}
	return s
}
