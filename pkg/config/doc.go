// Package config loads typed configuration structs from environment
// variables, with struct tags describing names and defaults.
//
// Parsing is backed by caarlos0/env; a .env file in the working directory
// is loaded once per process via godotenv when present. Every distinct
// struct type is parsed exactly once and cached, so independent packages
// reading the same config type cannot disagree about its values.
package config
