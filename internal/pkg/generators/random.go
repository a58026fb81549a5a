package generators

import (
	crand "crypto/rand"
	"io"
	"math/big"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Source picks uniformly distributed indices
type Source interface {
	// IntN returns a uniform random integer in [0, n). n must be > 0.
	IntN(n int) (int, error)
}

type cryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a Source backed by the operating system CSPRNG
func NewCryptoSource() Source {
	return &cryptoSource{reader: crand.Reader}
}

func (s *cryptoSource) IntN(n int) (int, error) {
	i, err := crand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "reading random source")
	}
	return int(i.Int64()), nil
}

type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a deterministic Source. Output is predictable: tests only.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) IntN(n int) (int, error) {
	return s.r.IntN(n), nil
}
