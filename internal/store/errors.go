// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [VaultStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned by Get when nothing is stored under the
	// requested slot.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrEmptySlotName is returned when a slot name is empty.
	ErrEmptySlotName = errors.New("slot name is empty")

	// ErrStoreClosed is returned by in-process stores after Close.
	ErrStoreClosed = errors.New("store is closed")

	// ErrUnknownDriver is returned by [NewVaultStore] for a driver name it
	// does not recognize.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL-backed store when an operation fails before any slot logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a slot row fails.
	ErrScanningRow = errors.New("failed to scan slot row")
)
