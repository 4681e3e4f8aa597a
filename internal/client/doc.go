// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a subcommand (list, get, create, update, delete, health), calls
// the matching [adapter.ItemsAdapter] method and prints the result as
// indented JSON.
package client
