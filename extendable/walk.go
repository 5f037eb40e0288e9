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
	"errors"
	"reflect"

	goset "github.com/deckarep/golang-set/v2"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/extension"
	"github.com/tochemey/extendable/internal/validation"
)

// SkipChildren is returned by a WalkFunc to skip the extensions held by the visited extension.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every extension visited by Walk.
// depth is one for the extensions held directly by the walked container.
type WalkFunc func(depth int, ext extension.Extension) error

// Walk visits the extension tree held by root depth-first, in insertion order.
//
// Extensions that are themselves Extendable are descended into, unless fn returns
// SkipChildren for them. Any other error returned by fn stops the walk and is returned.
// Every container is read from a snapshot, so fn may mutate the tree.
// A container already being walked higher up the current branch is visited
// but not descended into again, so cyclic trees terminate.
func Walk(root Extendable, fn WalkFunc) error {
	if validation.IsNil(root) || fn == nil {
		return gerrors.NewErrInvalidArgument("root and walk function are required")
	}
	w := &walker{fn: fn, ancestors: goset.NewThreadUnsafeSet[Extendable]()}
	return w.walk(root, 1)
}

// walker holds the containers on the branch being walked
type walker struct {
	fn        WalkFunc
	ancestors goset.Set[Extendable]
}

func (w *walker) walk(container Extendable, depth int) error {
	if trackable(container) {
		w.ancestors.Add(container)
		defer w.ancestors.Remove(container)
	}

	for _, ext := range container.Extensions() {
		err := w.fn(depth, ext)
		if errors.Is(err, SkipChildren) {
			continue
		}

		if err != nil {
			return err
		}

		child, ok := ext.(Extendable)
		if !ok || w.onBranch(child) {
			continue
		}

		if err := w.walk(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) onBranch(container Extendable) bool {
	return trackable(container) && w.ancestors.Contains(container)
}

// trackable reports whether the container can be used as a set key.
// Containers that are not comparable cannot hold themselves.
func trackable(container Extendable) bool {
	return reflect.TypeOf(container).Comparable()
}
