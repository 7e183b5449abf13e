// Package config loads gatectl's configuration by layering defaults, the
// user-level config file and the project-level config file, in that order.
package config
