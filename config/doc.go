// Package config provides functional-options configuration for the
// partitioner: a Config is built from sensible defaults, then each Option
// mutates it in order, with later options overriding earlier ones.
package config
