// Package finance provides the data and aggregation core of a personal
// finance tracker. It is designed to be local-first: every record lives in a
// small on-disk database owned by the user, and every view is recomputed from
// those records on demand.
//
// The core functionalities include:
//   - Record Store: CRUD over the seven collections (transactions,
//     categories, budgets, goals, investments, reminders, settings), each
//     record keyed by a store-assigned integer identifier.
//   - Settings Registry: per-key settings rows merged over hard-coded
//     defaults, with a module map merged key by key.
//   - Aggregation Engine: pure functions turning record slices into totals,
//     breakdowns, utilization percentages and alert lists.
//   - Financial Calculators: stateless closed-form formulas for savings,
//     loans, retirement, compound growth, discounts and inflation.
//   - Import/Export: a single versioned JSON document holding the whole
//     database, safe to re-import because references are by category name,
//     never by identifier.
//
// This package serves as the foundational logic for the `fm` command-line
// tool; all rendering and formatting concerns live in the renderer and cmd
// packages.
package finance
