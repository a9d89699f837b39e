// Package report defines the Reporter interface used for all user-facing
// console output, with a color console implementation and a capturing
// recorder for tests.
package report
