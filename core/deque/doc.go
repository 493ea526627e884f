// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package deque provides DequeList, a generic doubly-linked list with
// constant time insertion and removal at both ends.
//
// The list is bounded by a head and a tail sentinel that exist for the
// lifetime of the list and never hold a value. Keeping the sentinels means
// every insertion and removal happens between two existing nodes, so the
// ends need no special casing.
//
// Reverse runs in linear time and constant space: each node exchanges its
// next and prev links and the sentinels then exchange roles.
package deque
