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

// Package extendable attaches a set of named extensions to an object.
//
// A Container holds extensions of a constrained type and is safe for concurrent use.
// A Node is both an extension, with an identity and a position in a tree, and a
// Container of further extensions. Every node of a tree points back to its
// immediate parent and to the single root container of the tree:
//
//	root := extendable.New[*extendable.Node[extension.Extension]]()
//	auth, _ := extendable.NewNode[extension.Extension]("auth", root, root)
//	_, _ = root.AddExtension(auth)
//	cache, _ := extendable.NewNode[extension.Extension]("cache", auth, root)
//	_, _ = auth.AddExtension(cache)
package extendable

import (
	"github.com/tochemey/extendable/extension"
)

// Extendable is implemented by everything that holds extensions.
// Nodes keep Extendable references to their parent and root; these references never own.
type Extendable interface {
	// AddExtension inserts candidate unless an equal extension is already held.
	AddExtension(candidate extension.Extension) (bool, error)
	// RemoveExtension removes the first extension whose id matches id case-insensitively.
	RemoveExtension(id string) (bool, error)
	// GetExtension returns the first extension whose id matches id case-insensitively.
	GetExtension(id string) (extension.Extension, error)
	// Extensions returns a snapshot of the extensions held.
	Extensions() []extension.Extension
	// Len returns the number of extensions held.
	Len() int
}

// enforce compilation error
var (
	_ Extendable          = (*Container[extension.Extension])(nil)
	_ Extendable          = (*Node[extension.Extension])(nil)
	_ extension.Extension = (*Node[extension.Extension])(nil)
	_ extension.Equaler   = (*Node[extension.Extension])(nil)
	_ extension.Hashable  = (*Node[extension.Extension])(nil)
)
