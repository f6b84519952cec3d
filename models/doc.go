// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared by the store, transport and
// service layers: installed-content metadata records, the texture registry,
// catalog entries and the status values published by the pipelines.
package models
