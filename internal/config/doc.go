// Package config loads, normalizes, and validates reelplan configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// environment fallbacks such as REELPLAN_LLM_API_KEY and OPENROUTER_API_KEY.
// The Config type centralizes the parser, scheduler, and Q&A knobs so the CLI
// discovers everything in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, parsed clock values, and clear validation errors.
package config
