// Package models defines the persistence-facing data model.
//
// [Model] is the base interface all persisted entities implement, and
// [Repository] is the generic data-access contract the repositories
// package satisfies per entity.
//
// [Report] and [PersistedRecord] store completed batch fetches. They are an
// audit trail only: the fetch path writes them when asked to, and nothing
// in the resolution path ever reads them back.
package models
