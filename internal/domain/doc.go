// Package domain contains the core value types, calculations and errors of
// the EduLens study tools. Subpackages hold the pure computations:
// planner (exam year, deadlines, study time) and textbook (label
// normalization, word-bank unit ranges). Nothing in this tree reads a live
// clock or performs I/O.
package domain
