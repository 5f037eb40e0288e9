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
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	goset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/extension"
	"github.com/tochemey/extendable/hash"
	imetric "github.com/tochemey/extendable/internal/metric"
	"github.com/tochemey/extendable/internal/validation"
	"github.com/tochemey/extendable/log"
)

const defaultName = "extensions"

// Container holds a set of extensions of type T.
//
// Members are unique by value equality: a member implementing extension.Equaler is
// compared with Equal, any other member with the == operator. Members are bucketed by
// hash code, the hash code only narrows the comparison and never replaces it.
//
// Lookups by id scan the members in insertion order and compare ids case-insensitively.
// Mutations take the exclusive lock, lookups the shared one.
type Container[T extension.Extension] struct {
	mu sync.RWMutex
	// members keeps the insertion order
	members []T
	buckets map[uint64][]T
	// size mirrors len(members) and can be read without the lock
	size atomic.Int64

	name          string
	hasher        hash.Hasher
	logger        log.Logger
	meterProvider metric.MeterProvider
	metric        *imetric.ContainerMetric
	seed          []T
}

// New creates a Container.
func New[T extension.Extension](opts ...Option[T]) *Container[T] {
	c := &Container[T]{
		buckets: make(map[uint64][]T),
		name:    defaultName,
		hasher:  hash.DefaultHasher(),
		logger:  log.DiscardLogger,
	}

	for _, opt := range opts {
		opt.Apply(c)
	}

	c.logger = c.logger.With("container", c.name)
	containerMetric, err := imetric.NewContainerMetric(c.meterProvider, c.name)
	if err != nil {
		c.logger.Warnf("failed to create container metrics: %v", err)
		// the noop provider never fails
		containerMetric, _ = imetric.NewContainerMetric(noop.NewMeterProvider(), c.name)
	}
	c.metric = containerMetric

	// seeded extensions are installed wholesale, without deduplication
	for _, member := range c.seed {
		if validation.IsNil(member) {
			continue
		}
		key := c.hashOf(member)
		c.members = append(c.members, member)
		c.buckets[key] = append(c.buckets[key], member)
	}
	c.size.Store(int64(len(c.members)))
	c.metric.RecordSeed(context.Background(), len(c.members))
	c.seed = nil

	return c
}

// Name returns the container name
func (c *Container[T]) Name() string {
	return c.name
}

// AddExtension inserts candidate into the container.
//
// It returns true when candidate has been inserted and false when an equal extension
// is already held. It fails with an InvalidArgument error when candidate is nil and
// with a TypeMismatch error when candidate is not a T.
func (c *Container[T]) AddExtension(candidate extension.Extension) (added bool, err error) {
	defer c.recoverUnexpected(&err)

	if validation.IsNil(candidate) {
		return false, gerrors.NewErrInvalidArgument("extension is required")
	}

	member, ok := candidate.(T)
	if !ok {
		return false, gerrors.NewErrTypeMismatch(fmt.Sprintf("%T", candidate), typeName[T]())
	}

	logger := c.logger.With("extension", member.ID())
	if added = c.insert(c.hashOf(member), member); !added {
		logger.Debug("extension is already registered")
		return false, nil
	}

	c.metric.RecordAdd(context.Background())
	logger.Debug("extension added")
	return true, nil
}

// RemoveExtension removes the first extension whose id matches id case-insensitively.
//
// The extension is located under the shared lock and removed under the exclusive lock,
// provided an extension equal to it is still held at that point. It returns false when
// no extension matches, or when the matching extension has been removed concurrently.
// It fails with an InvalidArgument error when id is empty.
func (c *Container[T]) RemoveExtension(id string) (removed bool, err error) {
	defer c.recoverUnexpected(&err)

	if err := validateID(id); err != nil {
		return false, err
	}

	if c.size.Load() == 0 {
		return false, nil
	}

	candidate, ok := c.find(id)
	if !ok {
		return false, nil
	}

	if removed = c.delete(c.hashOf(candidate), candidate); !removed {
		c.logger.With("extension", id).Debug("extension was removed concurrently")
		return false, nil
	}

	c.metric.RecordRemove(context.Background())
	c.logger.With("extension", candidate.ID()).Debug("extension removed")
	return true, nil
}

// GetExtension returns the first extension whose id matches id case-insensitively.
//
// It fails with an InvalidArgument error when id is empty and with a NotFound error
// when the container is empty or no extension matches.
func (c *Container[T]) GetExtension(id string) (extension.Extension, error) {
	member, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Lookup is the typed version of GetExtension.
func (c *Container[T]) Lookup(id string) (member T, err error) {
	defer c.recoverUnexpected(&err)

	if err := validateID(id); err != nil {
		return member, err
	}

	if c.size.Load() == 0 {
		c.metric.RecordMiss(context.Background())
		return member, gerrors.NewErrEmpty(c.name)
	}

	member, ok := c.find(id)
	if !ok {
		c.metric.RecordMiss(context.Background())
		return member, gerrors.NewErrNotFound(id)
	}
	return member, nil
}

// HasExtension reports whether an extension matches id case-insensitively.
func (c *Container[T]) HasExtension(id string) bool {
	if id == "" || c.size.Load() == 0 {
		return false
	}
	_, ok := c.find(id)
	return ok
}

// Len returns the number of extensions held
func (c *Container[T]) Len() int {
	return int(c.size.Load())
}

// Extensions returns the extensions held, in insertion order
func (c *Container[T]) Extensions() []extension.Extension {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]extension.Extension, 0, len(c.members))
	for _, member := range c.members {
		out = append(out, member)
	}
	return out
}

// IDs returns the set of ids of the extensions held
func (c *Container[T]) IDs() goset.Set[string] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := goset.NewSet[string]()
	for _, member := range c.members {
		ids.Add(member.ID())
	}
	return ids
}

// insert adds member unless an equal member exists in its bucket
func (c *Container[T]) insert(key uint64, member T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.buckets[key]
	for _, existing := range bucket {
		if equal(existing, member) {
			return false
		}
	}

	c.buckets[key] = append(bucket, member)
	c.members = append(c.members, member)
	c.size.Inc()
	return true
}

// delete removes the member equal to candidate, if it is still held
func (c *Container[T]) delete(key uint64, candidate T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.buckets[key]
	index := slices.IndexFunc(bucket, func(existing T) bool {
		return equal(existing, candidate)
	})

	if index < 0 {
		return false
	}

	if len(bucket) == 1 {
		delete(c.buckets, key)
	} else {
		c.buckets[key] = slices.Delete(bucket, index, index+1)
	}

	if index = slices.IndexFunc(c.members, func(existing T) bool {
		return equal(existing, candidate)
	}); index >= 0 {
		c.members = slices.Delete(c.members, index, index+1)
	}

	c.size.Dec()
	return true
}

// find returns the first member, in insertion order, whose id matches id case-insensitively
func (c *Container[T]) find(id string) (member T, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, existing := range c.members {
		if strings.EqualFold(existing.ID(), id) {
			return existing, true
		}
	}
	return member, false
}

func (c *Container[T]) hashOf(member T) uint64 {
	if hashable, ok := any(member).(extension.Hashable); ok {
		return hashable.HashCode()
	}
	return c.hasher.HashCode(member.ID())
}

// recoverUnexpected turns a panic raised by an extension implementation into an Unexpected error.
// The container lock has already been released by the time it runs.
func (c *Container[T]) recoverUnexpected(err *error) {
	if r := recover(); r != nil {
		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		*err = gerrors.NewUnexpectedError(cause)
		c.logger.Errorf("extension operation failed: %v", cause)
	}
}

// equal reports whether a and b are the same member of a set
func equal[T extension.Extension](a, b T) bool {
	left, right := any(a), any(b)
	leftType, rightType := reflect.TypeOf(left), reflect.TypeOf(right)
	if leftType != rightType {
		return false
	}

	if equaler, ok := left.(extension.Equaler); ok {
		return equaler.Equal(b)
	}

	if leftType == nil || leftType.Comparable() {
		return left == right
	}
	return false
}

func validateID(id string) error {
	chain := validation.
		New(validation.FailFast()).
		AddValidator(validation.NewEmptyStringValidator("id", id))
	if err := chain.Validate(); err != nil {
		return gerrors.NewErrInvalidArgument(err.Error())
	}
	return nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
