package domain

// GalleryImage is one entry of the gallery catalog
type GalleryImage struct {
	ID          string   `yaml:"id"`
	URL         string   `yaml:"url"`
	FallbackURL string   `yaml:"fallback_url"`
	Caption     *Caption `yaml:"caption,omitempty"`
}

// Caption is the text shown under an image in the overlay
type Caption struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultCaption applies to every image without a dedicated caption
var DefaultCaption = Caption{
	Title:       "Proceso de Transformación",
	Description: "Del cisco de café a materiales de construcción sostenibles",
}

// GallerySequence is the fixed, ordered gallery catalog.
// Order defines next/previous.
type GallerySequence struct {
	images []GalleryImage
	pos    map[string]int
}

// NewGallerySequence copies images into an immutable sequence
func NewGallerySequence(images []GalleryImage) GallerySequence {
	seq := GallerySequence{
		images: make([]GalleryImage, len(images)),
		pos:    make(map[string]int, len(images)),
	}
	copy(seq.images, images)
	for i, img := range images {
		if _, dup := seq.pos[img.ID]; !dup {
			seq.pos[img.ID] = i
		}
	}
	return seq
}

// Len returns the number of images
func (s GallerySequence) Len() int {
	return len(s.images)
}

// IndexOf returns the position of id, or -1
func (s GallerySequence) IndexOf(id string) int {
	if i, ok := s.pos[id]; ok {
		return i
	}
	return -1
}

// At returns the image at position i
func (s GallerySequence) At(i int) (GalleryImage, bool) {
	if i < 0 || i >= len(s.images) {
		return GalleryImage{}, false
	}
	return s.images[i], true
}

// Images returns a copy of the catalog
func (s GallerySequence) Images() []GalleryImage {
	out := make([]GalleryImage, len(s.images))
	copy(out, s.images)
	return out
}

// Next returns (i+1) mod N
func (s GallerySequence) Next(i int) int {
	if len(s.images) == 0 {
		return 0
	}
	return (i + 1) % len(s.images)
}

// Prev returns i-1, wrapping from 0 to N-1
func (s GallerySequence) Prev(i int) int {
	if len(s.images) == 0 {
		return 0
	}
	if i <= 0 {
		return len(s.images) - 1
	}
	return i - 1
}

// CaptionFor returns the dedicated caption of id, or DefaultCaption
func (s GallerySequence) CaptionFor(id string) Caption {
	if img, ok := s.At(s.IndexOf(id)); ok && img.Caption != nil {
		return *img.Caption
	}
	return DefaultCaption
}

// GalleryOverlayState is the overlay value. The zero value is closed.
// It stores index+1 so an open overlay always carries an index.
type GalleryOverlayState struct {
	slot int
}

// IsOpen reports whether an image is displayed
func (o GalleryOverlayState) IsOpen() bool {
	return o.slot > 0
}

// Index returns the displayed position when open
func (o GalleryOverlayState) Index() (int, bool) {
	if o.slot <= 0 {
		return 0, false
	}
	return o.slot - 1, true
}

// Open displays id. Unknown ids leave the state untouched and report false.
func (o GalleryOverlayState) Open(seq GallerySequence, id string) (GalleryOverlayState, bool) {
	i := seq.IndexOf(id)
	if i < 0 {
		return o, false
	}
	return GalleryOverlayState{slot: i + 1}, true
}

// Next moves to the following image, wrapping. Closed stays closed.
func (o GalleryOverlayState) Next(seq GallerySequence) GalleryOverlayState {
	i, ok := o.Index()
	if !ok || seq.Len() == 0 {
		return o
	}
	return GalleryOverlayState{slot: seq.Next(i) + 1}
}

// Prev moves to the preceding image, wrapping. Closed stays closed.
func (o GalleryOverlayState) Prev(seq GallerySequence) GalleryOverlayState {
	i, ok := o.Index()
	if !ok || seq.Len() == 0 {
		return o
	}
	return GalleryOverlayState{slot: seq.Prev(i) + 1}
}

// Close returns the closed state
func (o GalleryOverlayState) Close() GalleryOverlayState {
	return GalleryOverlayState{}
}
