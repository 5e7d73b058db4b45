// Package planner implements the date arithmetic behind the EduLens study
// tools: resolving the target entrance-exam year, counting days to a
// deadline, deriving a daily page pace, workbook progress and the
// weekday/weekend study-time breakdown.
//
// Every function here is pure. Callers sample the clock once and pass the
// resulting time or Date in, so results are deterministic and safe to
// compute from concurrent request handlers.
package planner
