package app

import "fmt"

// batchOutcome classifies the fold of a fan-out: every attempt
// succeeded, every attempt failed, or a mix.
type batchOutcome int

const (
	batchFullSuccess batchOutcome = iota
	batchPartial
	batchTotalFailure
)

type batchResult[S, F any] struct {
	Successful []S
	Failed     []F
}

func (r batchResult[S, F]) outcome() batchOutcome {
	switch {
	case len(r.Failed) == 0:
		return batchFullSuccess
	case len(r.Successful) == 0:
		return batchTotalFailure
	default:
		return batchPartial
	}
}

// runBatch attempts every item independently: one failing item never
// stops the rest, and a panic inside an attempt is converted into a
// failure entry for that item alone.
func runBatch[T, S, F any](items []T, attempt func(T) (S, error), onFail func(T, error) F) batchResult[S, F] {
	var res batchResult[S, F]
	for _, item := range items {
		s, err := attemptOne(item, attempt)
		if err != nil {
			res.Failed = append(res.Failed, onFail(item, err))
			continue
		}
		res.Successful = append(res.Successful, s)
	}
	return res
}

func attemptOne[T, S any](item T, attempt func(T) (S, error)) (s S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("attempt panicked: %v", r)
		}
	}()
	return attempt(item)
}
