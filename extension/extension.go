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

// Package extension defines the capability every extension must expose.
package extension

// Extension is anything that can be attached to an extendable container.
//
// Extensions are addressed by their identifier. The identifier is compared
// case-insensitively by lookups, so "Auth" and "auth" address the same extension.
type Extension interface {
	// ID returns the identifier of the extension.
	// It must be non-empty and must not change for the lifetime of the instance.
	ID() string
}

// Equaler is implemented by extensions with value equality.
//
// A container never holds two members that are equal. Members that do not
// implement Equaler are compared with the == operator.
//
// Members are bucketed by the hash of their ID unless they implement Hashable,
// and equality is only checked within a bucket. Extensions that are equal must
// therefore return the same ID, or implement Hashable so that equal values share
// a hash code. Otherwise equal values can be held side by side.
type Equaler interface {
	// Equal reports whether the extension equals other.
	// Containers only call Equal when both values have the same dynamic type.
	Equal(other Extension) bool
}

// Hashable is implemented by extensions that supply their own hash code.
//
// The hash only selects the bucket a member is stored in. Two extensions with
// the same hash code are still told apart by their equality, so HashCode must
// return the same value for equal extensions.
type Hashable interface {
	HashCode() uint64
}
