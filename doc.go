// Package club implements the season-scoped management core for a football
// club: players, coaches, physiotherapists, treatments, youth teams, members,
// match plans and the club's revenue/expense ledger. It is designed to be
// local-first and auditable: the whole state lives in a single human-readable
// JSON document, and every mutating operation rewrites that document before
// returning.
//
// The package is organised around three layers:
//
//   - Store: the persistence boundary. It loads and saves the whole document
//     and assigns monotonically increasing integer ids per collection.
//   - Season management: exactly one season is active at any time; every
//     season-scoped record carries a season reference, and listings filter by
//     the active season.
//   - Service: the facade exposing CRUD per entity kind plus the cross-entity
//     protocols (youth fee revenue sync, membership dues projection, match
//     plan roster normalization, cascading deletes, financial summary).
//
// The model is single-process and single-writer: operations are synchronous,
// validate fully before the one persisting write, and never leave an entity
// half-updated.
package club
