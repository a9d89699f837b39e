// Package toolchain runs external developer tools (the project generator,
// yarn, npm) as child processes, streaming their output through a Reporter
// with severity inferred from the stream and line prefix.
package toolchain
