// Package core turns spreadsheet rows into the dashboard's views.
//
// This package holds all domain logic independent of the HTTP layer and of
// where rows come from. It can be used by web handlers, tools, or tests
// without modification.
//
// # Architecture
//
// Data flows one way:
//
//	RowSource -> Record -> normalization -> join / aggregation -> views
//
//   - [Record]: one raw row, ordered keys, string cells.
//   - Normalization: [NormalizeCode], [ParseScore], [SafeNumeric], [ScoreBand].
//     All total; bad cells become empty codes, absent scores, or [BandNA].
//   - Join: [ExtractCode] finds the code in any column whose header contains
//     "code", so the tracker tabs can rename their code column freely.
//   - Aggregation: [BandHistogram], [DimensionAverages], [RankCountries],
//     [TechnicalAreaRankings].
//   - Views: [Service.BuildOverview], [Service.BuildCountryList],
//     [Service.BuildCountryDetail].
//
// # Snapshots
//
// Each view call fetches the tables it needs into a fresh [Snapshot] and
// computes from that alone. Nothing is cached between calls, so one view
// never mixes rows fetched at different times.
//
// # Averaging
//
// Non-numeric cells are dropped from averages rather than counted as zero.
// Technical area rankings are the exception: they list every country, with
// non-numeric cells ranked as zero.
//
// # Error Handling
//
// Only two errors leave this package: [ErrSourceUnavailable] when a fetch
// fails, and [ErrNotFound] for an unknown country code. [MapError] turns
// them into user-facing messages with support codes.
package core
