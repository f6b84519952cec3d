// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the mod manager client runtime.
//
// It wires the storages, the asset store adapter, the worker pool and the
// services into a single process lifecycle, and exposes the operations the
// command line runs.
package client
