// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package invariants gates expensive representation checks behind the
// "invariants" (or "race") build tag. Cheap precondition checks do not live
// here; they are performed unconditionally at the call sites.
package invariants

import "github.com/arborlab/arbor/internal/buildtags"

// Enabled is true if we were built with the "invariants" or "race" build
// tags.
const Enabled = buildtags.Invariants || buildtags.Race

// RaceEnabled is true if we were built with the "race" build tag.
const RaceEnabled = buildtags.Race
