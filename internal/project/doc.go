// Package project orchestrates the creation of a new React Native
// TypeScript project: it invokes the external generator, copies the
// template assets, patches the generated files, and installs the
// development dependencies.
package project
