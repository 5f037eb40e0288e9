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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/extension"
)

// authExtension is a domain extension built on top of a Node
type authExtension struct {
	*Node[extension.Extension]
}

func newTree(t *testing.T) (*Container[*Node[extension.Extension]], *Node[extension.Extension], *Node[extension.Extension]) {
	t.Helper()
	root := New[*Node[extension.Extension]](WithName[*Node[extension.Extension]]("root"))

	auth, err := NewNode[extension.Extension]("auth", root, root)
	require.NoError(t, err)
	added, err := root.AddExtension(auth)
	require.NoError(t, err)
	require.True(t, added)

	cache, err := NewNode[extension.Extension]("cache", auth, root)
	require.NoError(t, err)
	added, err = auth.AddExtension(cache)
	require.NoError(t, err)
	require.True(t, added)

	return root, auth, cache
}

func TestExtensionTree(t *testing.T) {
	root, auth, cache := newTree(t)

	ext, err := root.GetExtension("auth")
	require.NoError(t, err)
	assert.Same(t, auth, ext)

	ext, err = auth.GetExtension("cache")
	require.NoError(t, err)
	assert.Same(t, cache, ext)

	ext, err = root.GetExtension("cache")
	require.ErrorIs(t, err, gerrors.ErrNotFound)
	assert.Nil(t, ext)

	ext, err = cache.GetExtension("auth")
	require.ErrorIs(t, err, gerrors.ErrEmpty)
	assert.Nil(t, ext)

	assert.Equal(t, Extendable(root), auth.Parent())
	assert.Equal(t, Extendable(root), auth.Root())
	assert.Equal(t, Extendable(auth), cache.Parent())
	assert.Equal(t, Extendable(root), cache.Root())
	assert.Equal(t, "auth", auth.Name())
	assert.Equal(t, "cache", cache.ID())
}

func TestNewNode(t *testing.T) {
	root := New[*Node[extension.Extension]]()

	t.Run("With an empty id", func(t *testing.T) {
		node, err := NewNode[extension.Extension]("", root, root)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "the [id] is required")
		assert.Nil(t, node)
	})
	t.Run("With a nil parent", func(t *testing.T) {
		node, err := NewNode[extension.Extension]("auth", nil, root)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "the [parent] is required")
		assert.Nil(t, node)
	})
	t.Run("With a typed nil root", func(t *testing.T) {
		var missing *Container[*Node[extension.Extension]]
		node, err := NewNode[extension.Extension]("auth", root, missing)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "the [root] is required")
		assert.Nil(t, node)
	})
	t.Run("With a top-level parent that is not the root", func(t *testing.T) {
		other := New[*Node[extension.Extension]]()
		node, err := NewNode[extension.Extension]("auth", other, root)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "a top-level parent must be the root")
		assert.Nil(t, node)
	})
	t.Run("With a parent from another tree", func(t *testing.T) {
		other := New[*Node[extension.Extension]]()
		parent, err := NewNode[extension.Extension]("auth", other, other)
		require.NoError(t, err)

		node, err := NewNode[extension.Extension]("cache", parent, root)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "parent does not belong to the given root")
		assert.NotContains(t, err.Error(), "a top-level parent must be the root")
		assert.Nil(t, node)
	})
	t.Run("With several violations", func(t *testing.T) {
		other := New[*Node[extension.Extension]]()
		node, err := NewNode[extension.Extension]("", other, root)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Equal(t, gerrors.CodeInvalidArgument, gerrors.CodeOf(err))
		assert.Contains(t, err.Error(), "the [id] is required; a top-level parent must be the root")
		assert.Nil(t, node)
	})
	t.Run("With a nil parent and root", func(t *testing.T) {
		node, err := NewNode[extension.Extension]("auth", nil, nil)
		require.ErrorIs(t, err, gerrors.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "the [parent] is required; the [root] is required")
		assert.NotContains(t, err.Error(), "must be the root")
		assert.Nil(t, node)
	})
	t.Run("With seeded extensions", func(t *testing.T) {
		node, err := NewNode("auth", root, root,
			WithExtensions[extension.Extension](&plugin{id: "token"}, service{name: "session"}))
		require.NoError(t, err)
		assert.Equal(t, 2, node.Len())

		ext, err := node.GetExtension("SESSION")
		require.NoError(t, err)
		assert.Equal(t, service{name: "session"}, ext)
	})
	t.Run("With a custom name", func(t *testing.T) {
		node, err := NewNode("auth", root, root, WithName[extension.Extension]("authentication"))
		require.NoError(t, err)
		assert.Equal(t, "auth", node.ID())
		assert.Equal(t, "authentication", node.Name())
	})
}

func TestNodeEquality(t *testing.T) {
	root, auth, _ := newTree(t)

	t.Run("With the same id, parent and root", func(t *testing.T) {
		twin, err := NewNode[extension.Extension]("auth", root, root)
		require.NoError(t, err)
		require.NotSame(t, auth, twin)

		assert.True(t, auth.Equal(twin))
		assert.True(t, twin.Equal(auth))
		assert.Equal(t, auth.HashCode(), twin.HashCode())

		added, err := root.AddExtension(twin)
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, root.Len())

		// removal is by id, so the held node goes away
		removed, err := root.RemoveExtension("auth")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Zero(t, root.Len())

		added, err = root.AddExtension(auth)
		require.NoError(t, err)
		require.True(t, added)
	})
	t.Run("With ids differing by case", func(t *testing.T) {
		upper, err := NewNode[extension.Extension]("AUTH", root, root)
		require.NoError(t, err)
		assert.False(t, auth.Equal(upper))
	})
	t.Run("With the same id under another parent", func(t *testing.T) {
		nested, err := NewNode[extension.Extension]("auth", auth, root)
		require.NoError(t, err)

		assert.False(t, auth.Equal(nested))
		assert.Equal(t, auth.HashCode(), nested.HashCode())

		// both nodes coexist, lookups return the first inserted
		registry := New[*Node[extension.Extension]]()
		added, err := registry.AddExtension(auth)
		require.NoError(t, err)
		require.True(t, added)
		added, err = registry.AddExtension(nested)
		require.NoError(t, err)
		require.True(t, added)
		assert.Equal(t, 2, registry.Len())

		ext, err := registry.GetExtension("auth")
		require.NoError(t, err)
		assert.Same(t, auth, ext)
	})
	t.Run("With another extension type", func(t *testing.T) {
		assert.False(t, auth.Equal(&plugin{id: "auth"}))
		assert.False(t, auth.Equal(nil))
	})
	t.Run("With a type embedding a node", func(t *testing.T) {
		embedded := &authExtension{Node: auth}
		assert.True(t, auth.Equal(embedded))

		// a container compares runtime types first
		mixed := New[extension.Extension]()
		added, err := mixed.AddExtension(auth)
		require.NoError(t, err)
		require.True(t, added)
		added, err = mixed.AddExtension(embedded)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = mixed.AddExtension(&authExtension{Node: auth})
		require.NoError(t, err)
		assert.False(t, added)
	})
}

func TestNodePosition(t *testing.T) {
	root, auth, cache := newTree(t)

	token, err := NewNode[extension.Extension]("token", cache, root)
	require.NoError(t, err)

	assert.Equal(t, []string{"auth"}, auth.Path())
	assert.Equal(t, []string{"auth", "cache"}, cache.Path())
	assert.Equal(t, []string{"auth", "cache", "token"}, token.Path())
	assert.Equal(t, 1, auth.Depth())
	assert.Equal(t, 3, token.Depth())
	assert.Equal(t, "auth/cache/token", token.String())
	assert.Equal(t, fmt.Sprint(token), token.String())
}

func TestNodeReferencesUnderConcurrency(t *testing.T) {
	defer goleak.VerifyNone(t)

	root, auth, cache := newTree(t)
	const count = 100

	var eg errgroup.Group
	for i := range count {
		id := fmt.Sprintf("child-%d", i)
		eg.Go(func() error {
			child, err := NewNode[extension.Extension](id, auth, root)
			if err != nil {
				return err
			}
			if _, err := auth.AddExtension(child); err != nil {
				return err
			}
			_, err = auth.RemoveExtension(id)
			return err
		})
		eg.Go(func() error {
			if cache.Parent() != Extendable(auth) || cache.Root() != Extendable(root) {
				return fmt.Errorf("cache lost its position in the tree")
			}
			_, err := root.GetExtension("auth")
			return err
		})
	}

	require.NoError(t, eg.Wait())
	assert.Equal(t, 1, auth.Len())
	assert.Same(t, auth, cache.Parent())
	assert.Same(t, root, cache.Root())
}
