// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package extendable

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/extendable/extension"
	"github.com/tochemey/extendable/hash"
	"github.com/tochemey/extendable/log"
)

// Option is the interface that applies a configuration option.
type Option[T extension.Extension] interface {
	// Apply sets the Option value of a container.
	Apply(container *Container[T])
}

// OptionFunc implements the Option interface.
type OptionFunc[T extension.Extension] func(*Container[T])

// Apply implements Option
func (f OptionFunc[T]) Apply(c *Container[T]) {
	f(c)
}

// WithName sets the container name used in logs, metrics and errors.
// A node is named after its id unless this option overrides it.
func WithName[T extension.Extension](name string) Option[T] {
	return OptionFunc[T](func(c *Container[T]) {
		c.name = name
	})
}

// WithLogger sets the container logger
func WithLogger[T extension.Extension](logger log.Logger) Option[T] {
	return OptionFunc[T](func(c *Container[T]) {
		c.logger = logger
	})
}

// WithHasher sets the hasher used to bucket extensions that do not implement extension.Hashable
func WithHasher[T extension.Extension](hasher hash.Hasher) Option[T] {
	return OptionFunc[T](func(c *Container[T]) {
		c.hasher = hasher
	})
}

// WithMeterProvider sets the meter provider the container records its metrics with.
// The global provider is used by default.
func WithMeterProvider[T extension.Extension](provider metric.MeterProvider) Option[T] {
	return OptionFunc[T](func(c *Container[T]) {
		c.meterProvider = provider
	})
}

// WithExtensions pre-seeds the container.
//
// The extensions are installed as given: duplicates are not removed,
// so callers must deduplicate them beforehand.
func WithExtensions[T extension.Extension](extensions ...T) Option[T] {
	return OptionFunc[T](func(c *Container[T]) {
		c.seed = append(c.seed, extensions...)
	})
}
