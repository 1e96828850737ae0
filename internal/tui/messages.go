package tui

// --- Messages ---

// tilesScannedMsg carries a finished directory scan. gen guards against
// results from a scan that a later rescan superseded.
type tilesScannedMsg struct {
	tiles []*tile
	stats scanStats
	err   error
	gen   uint64
}

// previewLoadedMsg carries the head of a file for the preview panel.
type previewLoadedMsg struct {
	path    string
	content string
	binary  bool
	err     error
}
