// Package scaffold creates the description and ignore-list files of a
// daily log repository.
package scaffold
