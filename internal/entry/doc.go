// Package entry generates the text appended to the daily log.
package entry
