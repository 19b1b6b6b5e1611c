// Package config handles configuration management for confname.
// Values are layered from embedded defaults, the user config file, the
// project config file and CONFNAME_* environment variables, in that order.
package config
