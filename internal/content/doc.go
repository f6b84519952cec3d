// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package content holds the file-system helpers of the mod manager that do
// not own any state: path remapping from an import folder into the Content
// tree, discovery of primary content files, file listing and deletion, and
// extraction of downloaded packages.
//
// Nothing in this package panics or returns errors for expected conditions:
// a path that cannot be remapped yields "", a folder without content yields
// not-found.
package content
