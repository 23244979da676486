// Package stats computes aggregate statistics over a batch of catalog records.
//
// Every function is pure: it reads the batch and returns new values without
// mutating any record. Results that are conceptually mappings are returned as
// slices ordered by the first appearance of the key in the batch, so output is
// deterministic for a fixed batch order.
//
// Tie-breaks:
//   - CountByType: equal counts keep first-appearance order.
//   - AverageExperienceAndTopSpeedType: the first type reaching the maximum
//     average speed wins.
//   - GroupByPrimaryTypeAndMoves: among moves sharing the maximum count, the
//     one that occurred first wins.
//   - Top3ByStatsWithMoveDiversity: equal stat totals keep batch order, and
//     the first type reaching the largest diversity wins.
package stats
