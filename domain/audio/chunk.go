package audio

import "fmt"

// ChunkFile is one MP3 chunk confirmed to exist on disk
type ChunkFile struct {
	Path string
	Size int64 // bytes
}

// ChunkFilename returns the conventional chunk name: 1-based index,
// zero-padded to three digits. Downstream tooling locates chunks by
// this convention, so the format must not change.
func ChunkFilename(baseName string, index int) string {
	return fmt.Sprintf("%s_parte_%03d.mp3", baseName, index)
}
