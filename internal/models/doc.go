// Package models defines the canonical record shapes shared across the wavecli client.
//
// The package contains two categories of types:
//
// 1. Normalized records produced by the normalize package and owned by the store:
//   - [WordRecord] : A word captured from song lyrics with provenance and defaults filled in
//   - [TrackRecord] : A captured track with inferred platform and cover gradient
//   - [UserIdentity] : The resolved display identity (name, email, avatar initial)
//   - [Dashboard] : Aggregate counters for the dashboard view
//
// 2. Backend payload shapes returned by the api package:
//   - [Profile] : The /user/profile response with nested [Settings]
//   - [VocabularyList] : A generated vocabulary list with [VocabularyEntry] rows
//
// Enumerations ([Language], [Platform], [WordSort], [TrackSort]) are closed sets.
// Records never carry the wildcard ALL members; those exist only as filter selections.
package models
