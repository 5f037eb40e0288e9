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
	"slices"
	"strings"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/extension"
	"github.com/tochemey/extendable/hash"
	"github.com/tochemey/extendable/internal/validation"
)

// Node is an extension that is itself a container of extensions of type T.
//
// A node is positioned in an extension tree: it references the container that
// directly holds it, its parent, and the top-level container of the tree, its root.
// The id, the parent and the root are set at construction and never change.
//
// Two nodes are equal when they have the same id, the same parent and the same root.
// The hash code only derives from the id.
type Node[T extension.Extension] struct {
	*Container[T]

	id     string
	parent Extendable
	root   Extendable
}

// positioned is implemented by nodes, including types embedding a Node
type positioned interface {
	ID() string
	Parent() Extendable
	Root() Extendable
}

// NewNode creates a node under parent in the tree rooted at root.
//
// The node is not added to parent: callers insert it with parent.AddExtension.
// It fails with an InvalidArgument error when id is empty, when parent or root is nil,
// or when parent does not belong to the tree rooted at root.
// Use WithExtensions to pre-seed the node.
func NewNode[T extension.Extension](id string, parent, root Extendable, opts ...Option[T]) (*Node[T], error) {
	chain := validation.
		New(validation.AllErrors()).
		AddValidator(validation.NewEmptyStringValidator("id", id)).
		AddValidator(validation.NewNilValidator("parent", parent)).
		AddValidator(validation.NewNilValidator("root", root)).
		AddAssertion(nestedInTree(parent, root), "parent does not belong to the given root").
		AddAssertion(topLevelIsRoot(parent, root), "a top-level parent must be the root")

	if err := chain.Validate(); err != nil {
		return nil, gerrors.NewErrInvalidArgument(err.Error())
	}

	options := make([]Option[T], 0, len(opts)+1)
	options = append(options, WithName[T](id))
	options = append(options, opts...)

	return &Node[T]{
		Container: New(options...),
		id:        id,
		parent:    parent,
		root:      root,
	}, nil
}

// ID returns the node id
func (n *Node[T]) ID() string {
	return n.id
}

// Parent returns the container directly holding the node
func (n *Node[T]) Parent() Extendable {
	return n.parent
}

// Root returns the top-level container of the tree
func (n *Node[T]) Root() Extendable {
	return n.root
}

// Equal reports whether other is a node with the same id, parent and root.
func (n *Node[T]) Equal(other extension.Extension) bool {
	node, ok := other.(positioned)
	if !ok || validation.IsNil(other) {
		return false
	}
	return n.id == node.ID() &&
		n.parent == node.Parent() &&
		n.root == node.Root()
}

// HashCode returns the hash code of the node id
func (n *Node[T]) HashCode() uint64 {
	return hash.DefaultHasher().HashCode(n.id)
}

// Path returns the ids from the node directly under the root down to n.
func (n *Node[T]) Path() []string {
	path := []string{n.id}
	for parent := n.parent; parent != nil; {
		node, ok := parent.(positioned)
		if !ok {
			break
		}
		path = append(path, node.ID())
		parent = node.Parent()
	}
	slices.Reverse(path)
	return path
}

// Depth returns the distance between the node and the root.
// Nodes directly held by the root have a depth of one.
func (n *Node[T]) Depth() int {
	return len(n.Path())
}

// String returns the node path
func (n *Node[T]) String() string {
	return strings.Join(n.Path(), "/")
}

// nestedInTree reports whether a parent node shares the given root.
// Missing references are reported by the required validators.
func nestedInTree(parent, root Extendable) bool {
	node, ok := parent.(positioned)
	if !ok || validation.IsNil(parent) || validation.IsNil(root) {
		return true
	}
	return node.Root() == root
}

// topLevelIsRoot reports whether a parent that is not a node is the root itself
func topLevelIsRoot(parent, root Extendable) bool {
	if _, ok := parent.(positioned); ok || validation.IsNil(parent) || validation.IsNil(root) {
		return true
	}
	return parent == root
}
