//go:build go1.23

package xiter

import (
	"iter"

	"github.com/flier/rbtree/pkg/xiter/inspect"
)

// Inspect writes each element, as it is passed on, to the standard output or to the writer given with inspect.Output.
func Inspect[T any](x iter.Seq[T], opts ...inspect.Option) iter.Seq[T] {
	i := inspect.New(opts)

	return func(yield func(T) bool) {
		i.Start()
		defer i.Stop()

		for v := range x {
			i.Inspect(v)

			if !yield(v) {
				break
			}
		}
	}
}

// InspectFunc writes each element, as it is passed on, to the standard output or to the writer given with inspect.Output.
func InspectFunc[T any](opts ...inspect.Option) MappingFunc[T, T] {
	return bind2rest(Inspect[T], opts)
}

// Inspect2 writes each key-value, as it is passed on, to the standard output or to the writer given with inspect.Output.
func Inspect2[K, V any](x iter.Seq2[K, V], opts ...inspect.Option) iter.Seq2[K, V] {
	i := inspect.New(opts)

	return func(yield func(K, V) bool) {
		i.Start()
		defer i.Stop()

		for k, v := range x {
			i.Inspect2(k, v)

			if !yield(k, v) {
				break
			}
		}
	}
}

// Inspect2Func writes each key-value, as it is passed on, to the standard output or to the writer given with inspect.Output.
func Inspect2Func[K, V any](opts ...inspect.Option) Mapping2Func[K, V, V] {
	return bind2rest(Inspect2[K, V], opts)
}
