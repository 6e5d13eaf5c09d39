// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package speech provides the optional voice layer for saathi-tui.
//
// At startup Probe looks for locally installed engines (vosk-transcriber
// for recognition, espeak-ng for synthesis) and returns either an
// engine-backed Bridge or an inert one. Callers hold the same interface in
// both cases, so the UI offers voice controls only when Available reports
// true and otherwise behaves as if the feature does not exist.
//
// Recognition language follows the UI locale at the moment listening
// starts (en-US, hi-IN, mr-IN). Synthesis voice follows the text itself:
// any Devanagari selects the Hindi voice, which also covers Marathi text
// since the scripts are indistinguishable here.
//
// Engine failures are logged and dropped. Voice problems never surface as
// chat errors.
package speech
