// Package pm selects between the yarn and npm package managers and runs
// dependency installation in generated projects. Selection is by presence
// probe: if yarn answers a version check it is used, otherwise npm.
package pm
