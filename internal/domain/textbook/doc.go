// Package textbook holds the word-bank side of EduLens: normalizing the
// free-form textbook labels stored with test results, grouping them by
// canonical textbook, and slicing a word bank into fixed-size units for the
// statically generated per-unit landing pages.
package textbook
