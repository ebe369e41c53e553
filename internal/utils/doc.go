// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small HTTP helpers shared by the transport layer.
package utils
