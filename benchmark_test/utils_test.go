package benchmark_test

import "github.com/hupe1980/splitvec"

// Payload is a medium-sized element so copies are not free.
type Payload [4]uint64

var sink int

type namedGrowth struct {
	name   string
	growth splitvec.Growth
}

func growths() []namedGrowth {
	linear, err := splitvec.Linear(1 << 10)
	if err != nil {
		panic(err)
	}
	exponential, err := splitvec.Exponential(4, 1.5)
	if err != nil {
		panic(err)
	}
	custom, err := splitvec.Custom(func(k int) int { return 256 << min(k, 6) })
	if err != nil {
		panic(err)
	}
	return []namedGrowth{
		{"linear", linear},
		{"doubling", splitvec.DefaultGrowth()},
		{"exponential", exponential},
		{"custom", custom},
	}
}

func value(i int) Payload {
	switch i % 3 {
	case 0:
		return Payload{uint64(i), uint64(i), uint64(i), uint64(i)}
	case 1:
		return Payload{uint64(i + 1), uint64(i + 1), uint64(i + 1), uint64(i + 1)}
	default:
		return Payload{uint64(i + 2), uint64(i + 2), uint64(i + 2), uint64(i + 2)}
	}
}

func add(a Payload, b *Payload) Payload {
	for i := range a {
		a[i] += b[i]
	}
	return a
}
