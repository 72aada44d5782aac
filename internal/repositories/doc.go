// Package repositories implements sqlite persistence for fetch reports.
//
// [ReportRepository] and [RecordRepository] each implement the generic
// models.Repository contract with uuid primary keys, per-table sequence
// counters, and soft deletes. [ReportStore] composes the two so command
// code can save a whole batch in one call and read it back for export.
package repositories
