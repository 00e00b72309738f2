// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON so a session can be audited or
// summarized after the fact with ReadJSONLinesLog and Report.
package logger
