// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON objects, one per line, and can
// be read back and summarized with a Report.
package logger
