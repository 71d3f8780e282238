package tui

import "github.com/papapumpkin/almanac/internal/probe"

// MsgDayProbed reports the existence check for one day of the render
// identified by Gen.
type MsgDayProbed struct {
	Gen   uint64
	Day   int
	Found bool
}

// MsgPopupProbe carries one candidate probe for the popup identified by
// Handle. Wave counts the probe rounds of that popup; only results of the
// latest wave settle a candidate.
type MsgPopupProbe struct {
	Handle uint64
	Wave   int
	Result probe.Result
}

// MsgPreviewLoaded carries a rendered thumbnail for a found image.
type MsgPreviewLoaded struct {
	Handle  uint64
	Path    string
	Preview string
	Err     error
}

// MsgAssetsChanged signals that files under the watched month directory changed.
type MsgAssetsChanged struct {
	Dir string
}
