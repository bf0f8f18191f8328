package bits

import "github.com/polybius/polybius-go/internal/model"

// source yields bits of one kind. next reports false once it has nothing left.
type source interface {
	next(rnd RandomSource) (model.Bit, bool)
}

type numberSource struct {
	numbers []model.Number
	order   []int
}

func (s *numberSource) next(rnd RandomSource) (model.Bit, bool) {
	if len(s.order) == 0 {
		return model.Bit{}, false
	}
	i := s.order[0]
	s.order = s.order[1:]
	return FromNumber(rnd, s.numbers[i]), true
}

type textSource struct {
	texts []string
	order []int
}

func (s *textSource) next(rnd RandomSource) (model.Bit, bool) {
	if len(s.order) == 0 {
		return model.Bit{}, false
	}
	i := s.order[0]
	s.order = s.order[1:]
	return FromText(rnd, s.texts[i]), true
}

// symbolPrealloc is the symbol headroom reserved up front; longer passwords grow by append.
const symbolPrealloc = 16

type symbolSource struct{}

func (symbolSource) next(rnd RandomSource) (model.Bit, bool) {
	return FromSymbol(rnd), true
}

// Assemble builds one password from the pool.
//
// Facts of each kind are visited in a random order and used at most once.
// Bits are taken round-robin from numbers, texts and, when enabled, symbols,
// skipping any kind that has run out. Symbols never run out. The result holds
// at most settings.TargetLength bits and is shorter when the pool runs dry.
// The pool is not modified.
func Assemble(rnd RandomSource, pool model.FactPool, settings model.GenerationSettings) model.Password {
	if settings.TargetLength <= 0 {
		return model.Password{}
	}

	sources := []source{
		&numberSource{numbers: pool.Numbers, order: permutation(rnd, len(pool.Numbers))},
		&textSource{texts: pool.Texts, order: permutation(rnd, len(pool.Texts))},
	}
	if settings.IncludeSymbols {
		sources = append(sources, symbolSource{})
	}

	// Size from what the pool can supply, not from the target, which may be huge.
	capacity := pool.Len()
	if settings.IncludeSymbols {
		capacity += symbolPrealloc
	}
	password := make(model.Password, 0, min(capacity, settings.TargetLength))
	for len(password) < settings.TargetLength && len(sources) > 0 {
		live := sources[:0]
		for _, src := range sources {
			if len(password) == settings.TargetLength {
				live = append(live, src)
				continue
			}
			bit, ok := src.next(rnd)
			if !ok {
				continue
			}
			password = append(password, bit)
			live = append(live, src)
		}
		sources = live
	}

	return password
}

// permutation returns a Fisher-Yates shuffled slice of the indexes [0, n).
func permutation(rnd RandomSource, n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
