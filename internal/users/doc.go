// Package users keeps the in-memory, insertion-ordered list of user records
// and enforces the record invariant: a non-empty name and an age between 1 and
// 120 inclusive. Every outcome is reported to the operator through a notifier.
package users
