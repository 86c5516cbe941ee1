// Package config supplies process-wide defaults for table validation: strict
// mode, lazy (accumulate) mode, the check example-value cap and the row
// validation error cap.
//
// Defaults are sourced from the environment through `github.com/caarlos0/env`
// after an optional `.env` load via `github.com/joho/godotenv`:
//
//	FRAMECHECK_STRICT=true
//	FRAMECHECK_LAZY=true
//	FRAMECHECK_CHECKS_MAX_SAMPLES=10
//	FRAMECHECK_ROW_MAX_ERRORS=20
//
// The first Load parses and caches; later calls return the cached value. The
// validation engine itself never reads configuration (it takes plain
// parameters); only the guard layer consults this package when a caller left
// a setting unset. Reset clears the cache for tests.
package config
