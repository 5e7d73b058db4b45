// Package service contains the application use cases that sit between the
// delivery mechanisms (HTTP API, CLI) and the pure domain packages.
//
// Services own the parts the domain deliberately leaves out: sampling the
// clock once per operation, parsing and validating raw inputs, applying
// configured defaults and logging. The domain computations themselves stay
// in internal/domain/planner and internal/domain/textbook.
//
// Key components:
//
// 1. PlannerService: exam year, deadline plans and study-time estimates
// 2. TextbookService: label normalization and grouping, wordbook catalog
//    lookups and unit page enumeration
//
// Services receive their dependencies through constructor injection.
package service
