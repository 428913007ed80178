// Package testutil provides shared helpers for tests.
package testutil
