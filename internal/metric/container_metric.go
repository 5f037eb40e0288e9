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

package metric

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/tochemey/extendable"
)

// ContainerMetric defines the instruments recorded by an extension container
type ContainerMetric struct {
	// Specifies the total number of extensions inserted
	addCount metric.Int64Counter
	// Specifies the total number of extensions removed
	removeCount metric.Int64Counter
	// Specifies the total number of lookups that matched no extension
	missCount metric.Int64Counter
	// Specifies the current number of extensions held
	size metric.Int64UpDownCounter

	attributes metric.MeasurementOption
}

// NewContainerMetric creates the instruments of the named container.
// The global meter provider is used when provider is nil.
func NewContainerMetric(provider metric.MeterProvider, container string) (*ContainerMetric, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	meter := provider.Meter(instrumentationName)
	containerMetric := &ContainerMetric{
		attributes: metric.WithAttributeSet(attribute.NewSet(attribute.String("container", container))),
	}

	var err error
	if containerMetric.addCount, err = meter.Int64Counter(
		"extension_add_count",
		metric.WithDescription("Total number of extensions inserted"),
	); err != nil {
		return nil, fmt.Errorf("failed to create addCount instrument, %w", err)
	}

	if containerMetric.removeCount, err = meter.Int64Counter(
		"extension_remove_count",
		metric.WithDescription("Total number of extensions removed"),
	); err != nil {
		return nil, fmt.Errorf("failed to create removeCount instrument, %w", err)
	}

	if containerMetric.missCount, err = meter.Int64Counter(
		"extension_lookup_miss_count",
		metric.WithDescription("Total number of lookups that did not match any extension"),
	); err != nil {
		return nil, fmt.Errorf("failed to create missCount instrument, %w", err)
	}

	if containerMetric.size, err = meter.Int64UpDownCounter(
		"extension_count",
		metric.WithDescription("Number of extensions currently held"),
	); err != nil {
		return nil, fmt.Errorf("failed to create size instrument, %w", err)
	}

	return containerMetric, nil
}

// RecordAdd records an insertion
func (x *ContainerMetric) RecordAdd(ctx context.Context) {
	x.addCount.Add(ctx, 1, x.attributes)
	x.size.Add(ctx, 1, x.attributes)
}

// RecordSeed records extensions installed at construction time
func (x *ContainerMetric) RecordSeed(ctx context.Context, count int) {
	if count > 0 {
		x.size.Add(ctx, int64(count), x.attributes)
	}
}

// RecordRemove records a removal
func (x *ContainerMetric) RecordRemove(ctx context.Context) {
	x.removeCount.Add(ctx, 1, x.attributes)
	x.size.Add(ctx, -1, x.attributes)
}

// RecordMiss records a lookup that matched nothing
func (x *ContainerMetric) RecordMiss(ctx context.Context) {
	x.missCount.Add(ctx, 1, x.attributes)
}
