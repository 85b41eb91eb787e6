package render

// Stats are the monotonic counters the renderer tracks across frames.
type Stats struct {
	Frames      uint64
	Resizes     uint64

	LastFrameNS      int64
	LastDirtyRegions int
	LastCellsCovered int

	TotalDirtyRegions uint64
	TotalCellsCovered uint64
	MaxCellsCovered   int
}

func (s *Stats) recordFrame(frameNS int64, regions, cells int) {
	s.Frames++
	s.LastFrameNS = frameNS
	s.LastDirtyRegions = regions
	s.LastCellsCovered = cells
	s.TotalDirtyRegions += uint64(regions)
	s.TotalCellsCovered += uint64(cells)
	if cells > s.MaxCellsCovered {
		s.MaxCellsCovered = cells
	}
}
