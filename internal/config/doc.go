// Package config manages user-level settings stored at ~/.rnts/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the generator command and the preferred package manager.
package config
