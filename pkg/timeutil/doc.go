// Package timeutil formats timestamps with explicit UTC offset and DST
// information, both human-readable and filename-safe, and resolves
// current time by IANA timezone name.
package timeutil
