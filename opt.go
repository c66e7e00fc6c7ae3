package barajar

type opParam[T any] struct {
	Param T
}

// Opt ... functional option. applying it returns the Opt which restores the previous value.
type Opt[T any] func(*opParam[T]) Opt[T]

func (p *opParam[T]) Options(opts ...Opt[T]) (prevs []Opt[T]) {

	for _, opt := range opts {
		prevs = append(prevs, opt(p))
	}
	return
}

func DefaultOpt[T any]() *opParam[T] {
	return &opParam[T]{}
}

// MergeOpts applies opts to a new param. the returned func reverts them.
func MergeOpts[T any](opts ...Opt[T]) (*opParam[T], func(p *opParam[T])) {

	param := DefaultOpt[T]()
	prevs := param.Options(opts...)

	return param, func(p *opParam[T]) {
		for i := len(prevs) - 1; i >= 0; i-- {
			prevs[i](p)
		}
	}
}

// ShuffleOpt ... options for ShuffleAny()
type ShuffleOpt struct {
	seed *int64
	src  Source
}

func (sopt *ShuffleOpt) setSeed(seed *int64) (prev *int64) {
	prev = sopt.seed
	sopt.seed = seed
	return prev
}

func (sopt *ShuffleOpt) setSource(src Source) (prev Source) {
	prev = sopt.src
	sopt.src = src
	return prev
}

// source picks the explicit source, then a seeded one, then Default().
func (sopt *ShuffleOpt) source() Source {
	if sopt.src != nil {
		return sopt.src
	}
	if sopt.seed != nil {
		return New(*sopt.seed)
	}
	return Default()
}

// Seed ... shuffle with a fresh source seeded by seed.
func Seed(seed int64) Opt[ShuffleOpt] {
	return seedOpt(&seed)
}

func seedOpt(seed *int64) Opt[ShuffleOpt] {
	return func(p *opParam[ShuffleOpt]) Opt[ShuffleOpt] {
		prev := p.Param.setSeed(seed)
		return seedOpt(prev)
	}
}

// WithSource ... shuffle with src. takes precedence over Seed.
func WithSource(src Source) Opt[ShuffleOpt] {
	return func(p *opParam[ShuffleOpt]) Opt[ShuffleOpt] {
		prev := p.Param.setSource(src)
		return WithSource(prev)
	}
}
