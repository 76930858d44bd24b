package application

import "relato/internal/domain"

// Gallery applies overlay operations to the store
type Gallery struct {
	seq   domain.GallerySequence
	store *Store
}

// NewGallery creates a gallery controller over seq
func NewGallery(seq domain.GallerySequence, store *Store) *Gallery {
	return &Gallery{seq: seq, store: store}
}

// Sequence returns the gallery catalog
func (g *Gallery) Sequence() domain.GallerySequence {
	return g.seq
}

// Open shows id. Unknown ids are ignored and report false.
func (g *Gallery) Open(id string) bool {
	next, ok := g.store.Overlay().Open(g.seq, id)
	if ok {
		g.store.SetOverlay(next)
	}
	return ok
}

// OpenAt shows the image at position i
func (g *Gallery) OpenAt(i int) bool {
	img, ok := g.seq.At(i)
	if !ok {
		return false
	}
	return g.Open(img.ID)
}

// Next shows the following image, wrapping around
func (g *Gallery) Next() {
	g.store.SetOverlay(g.store.Overlay().Next(g.seq))
}

// Prev shows the preceding image, wrapping around
func (g *Gallery) Prev() {
	g.store.SetOverlay(g.store.Overlay().Prev(g.seq))
}

// Close hides the overlay
func (g *Gallery) Close() {
	g.store.SetOverlay(g.store.Overlay().Close())
}

// IsOpen reports whether the overlay is showing
func (g *Gallery) IsOpen() bool {
	return g.store.Overlay().IsOpen()
}

// Current returns the displayed image and its position
func (g *Gallery) Current() (domain.GalleryImage, int, bool) {
	i, ok := g.store.Overlay().Index()
	if !ok {
		return domain.GalleryImage{}, 0, false
	}
	img, ok := g.seq.At(i)
	return img, i, ok
}

// Caption returns the caption of the displayed image
func (g *Gallery) Caption() domain.Caption {
	img, _, ok := g.Current()
	if !ok {
		return domain.DefaultCaption
	}
	return g.seq.CaptionFor(img.ID)
}
