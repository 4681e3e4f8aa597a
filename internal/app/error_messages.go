// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// items-api server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgItemNotFound is returned when no item matches the requested name or id.
	MsgItemNotFound = "Item not found"

	// MsgItemAlreadyExists is returned when a create or rename would
	// duplicate an existing item name.
	MsgItemAlreadyExists = "Item with this name already exists"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not Found"

	// MsgUnexpectedError prefixes every 500 body. Outside production the
	// error text follows after a colon.
	MsgUnexpectedError = "An unexpected error occurred"

	// MsgDatabaseConnectionFailed prefixes the details of a failed health check.
	MsgDatabaseConnectionFailed = "Database connection failed"

	// MsgRunningOn is the format of the GET / banner; the argument is
	// EnvProduction or EnvDevelopment.
	MsgRunningOn = "Items API is running on %s Environment"

	EnvProduction  = "Production"
	EnvDevelopment = "Development"
)
