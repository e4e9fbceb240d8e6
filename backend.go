package blake2bench

import (
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	rfc "github.com/dchest/blake2b"
	"github.com/klauspost/cpuid/v2"
	simd "github.com/minio/blake2b-simd"
	xcrypto "golang.org/x/crypto/blake2b"
)

// DigestSize is the length in bytes of a Blake2b-256 digest.
const DigestSize = 32

type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Backend is incremental Blake2b-256 state from one of the compared implementations. Finalize
// consumes it: calling Update or Finalize afterwards panics.
type Backend interface {
	Update(data []byte)
	Finalize(out *Digest)
}

type BackendKind int

const (
	// golang.org/x/crypto/blake2b
	BackendXCrypto BackendKind = iota
	// github.com/dchest/blake2b, a direct port of the RFC 7693 reference code.
	BackendRFC
	// github.com/minio/blake2b-simd
	BackendSIMD
)

// AllBackends is the order backends are benchmarked and reported in.
var AllBackends = []BackendKind{BackendXCrypto, BackendRFC, BackendSIMD}

var backendNames = map[BackendKind]string{
	BackendXCrypto: "xcrypto",
	BackendRFC:     "rfc",
	BackendSIMD:    "simd",
}

var backendTitles = map[BackendKind]string{
	BackendXCrypto: "Blake2b256 - x/crypto",
	BackendRFC:     "Blake2b256 - RFC",
	BackendSIMD:    "Blake2b256 - SIMD",
}

func (k BackendKind) String() string {
	if s, ok := backendNames[k]; ok {
		return s
	}
	return fmt.Sprintf("BackendKind(%d)", int(k))
}

func (k BackendKind) Title() string {
	return backendTitles[k]
}

func ParseBackendKind(s string) (BackendKind, error) {
	for _, k := range AllBackends {
		if strings.EqualFold(s, backendNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown backend %q", s)
}

// Implements encoding.TextUnmarshaler so kinds can be used directly as flag values.
func (k *BackendKind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseBackendKind(string(b))
	return
}

// New returns fresh state for the kind's implementation.
func (k BackendKind) New() Backend {
	switch k {
	case BackendXCrypto:
		return NewXCrypto()
	case BackendRFC:
		return NewRFC()
	case BackendSIMD:
		return NewSIMD()
	default:
		panic(fmt.Sprintf("unknown backend kind %v", k))
	}
}

func NewXCrypto() Backend {
	h, err := xcrypto.New256(nil)
	if err != nil {
		// Only returned for oversized keys.
		panic(err)
	}
	return newHashBackend(BackendXCrypto, h)
}

func NewRFC() Backend {
	return newHashBackend(BackendRFC, rfc.New256())
}

func NewSIMD() Backend {
	return newHashBackend(BackendSIMD, simd.New256())
}

// All three implementations expose hash.Hash, so they share the consume-on-finalize wrapper.
type hashBackend struct {
	kind BackendKind
	h    takeOnce[hash.Hash]
}

func newHashBackend(kind BackendKind, h hash.Hash) *hashBackend {
	if h.Size() != DigestSize {
		panic(fmt.Sprintf("%v: digest size %v", kind, h.Size()))
	}
	return &hashBackend{
		kind: kind,
		h:    newTakeOnce(h),
	}
}

func (me *hashBackend) Update(data []byte) {
	// hash.Hash.Write never returns an error.
	me.h.Get().Write(data)
}

func (me *hashBackend) Finalize(out *Digest) {
	if me.h.Taken() {
		panic(fmt.Sprintf("%v backend finalized more than once", me.kind))
	}
	sum := me.h.Take().Sum(out[:0])
	if len(sum) != DigestSize || &sum[0] != &out[0] {
		panic("digest not written in place")
	}
}

// SIMDFeatures lists the vector extensions available to the SIMD backend on this CPU, best first.
func SIMDFeatures() (ret []string) {
	for _, f := range []struct {
		id   cpuid.FeatureID
		name string
	}{
		{cpuid.AVX2, "AVX2"},
		{cpuid.AVX, "AVX"},
		{cpuid.SSE4, "SSE4.1"},
	} {
		if cpuid.CPU.Supports(f.id) {
			ret = append(ret, f.name)
		}
	}
	return
}
