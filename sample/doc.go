// SPDX-License-Identifier: EPL-2.0

// Package sample implements the storage and editing of tracker instrument
// samples that may be playing while they are edited.
//
// # Storage
//
// A Sample owns one Buffer of 8 or 16-bit, mono or stereo PCM. Around the
// frames the buffer keeps copies that interpolating mixers read instead of
// checking bounds:
//
//   - a pre-roll of InterpolationMaxLookahead copies of the first frame
//   - a post-roll of InterpolationMaxLookahead copies of the last frame
//   - the frames around the primary loop end, unrolled as playback sees them
//   - the same for the sustain loop
//
// Every edit rebuilds these regions before the mixer can observe the result.
//
// # Editing
//
// All edits go through an Editor bound to a Player. Edits either mutate the
// buffer in place while holding the player's lock, or build new storage
// unlocked and swap it in under the lock:
//
//	player := sample.NewChannelTable(32)
//	ed, _ := sample.NewEditor(player, sample.Config{})
//
//	s, _ := sample.New(0, 1, 16)
//	ed.InsertSilence(s, 1000, 0)
//	ed.Reverse(s, 0, 0)
//
// A failed edit returns one of ErrNoData, ErrInvalidRange, ErrSampleTooLong
// or ErrUnsupported, wrapped with the operation name, and leaves the sample
// untouched.
//
// # Playback order
//
// Cursor walks a sample's frames the way a voice plays them, including
// ping-pong turns, which makes it the reference for what the lookahead
// regions must contain.
package sample
