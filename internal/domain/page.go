package domain

import "fmt"

// Page is the fixed ordered declaration of the scrolling document
type Page struct {
	Title    string         `yaml:"title"`
	Sections []SectionDecl  `yaml:"sections"`
	Gallery  []GalleryImage `yaml:"gallery"`
}

// SectionDecl declares one section and its animatable content
type SectionDecl struct {
	ID         string        `yaml:"id"`
	Nav        string        `yaml:"nav"`
	Kind       string        `yaml:"kind"`
	Title      string        `yaml:"title"`
	Subtitle   string        `yaml:"subtitle,omitempty"`
	Blocks     []Block       `yaml:"blocks,omitempty"`
	Counters   []CounterSpec `yaml:"counters,omitempty"`
	Connector  *Connector    `yaml:"connector,omitempty"`
	Calculator bool          `yaml:"calculator,omitempty"`
}

// Block is one element of a section body. Static blocks are always visible;
// the rest start pending and are revealed by the section's entry routine.
// Text may reference display targets as {target}.
type Block struct {
	Ref    string `yaml:"ref"`
	Text   string `yaml:"text"`
	Static bool   `yaml:"static,omitempty"`
}

// Connector is the visual link a transform section activates
type Connector struct {
	Ref  string `yaml:"ref"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SectionKind returns the parsed kind of the declaration
func (d SectionDecl) SectionKind() SectionKind {
	return ParseSectionKind(d.Kind)
}

// BlockRef returns the reveal reference of block ref within the section
func (d SectionDecl) BlockRef(ref string) string {
	return d.ID + "." + ref
}

// TitleRef returns the reveal reference of the section title
func (d SectionDecl) TitleRef() string {
	return d.ID + ".title"
}

// SubtitleRef returns the reveal reference of the section subtitle
func (d SectionDecl) SubtitleRef() string {
	return d.ID + ".subtitle"
}

// AnimatableRefs returns the reveal references of non-static blocks in order
func (d SectionDecl) AnimatableRefs() []string {
	var refs []string
	for _, b := range d.Blocks {
		if !b.Static {
			refs = append(refs, d.BlockRef(b.Ref))
		}
	}
	return refs
}

// TileRef returns the reveal reference of a gallery tile
func TileRef(imageID string) string {
	return "tile." + imageID
}

// Section returns the declaration with the given id
func (p *Page) Section(id string) (SectionDecl, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionDecl{}, false
}

// Registry builds the section registry in declaration order
func (p *Page) Registry() *Registry {
	sections := make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		sections[i] = Section{ID: s.ID, Index: i, Kind: s.SectionKind()}
	}
	return NewRegistry(sections...)
}

// GallerySequence builds the gallery catalog sequence
func (p *Page) GallerySequence() GallerySequence {
	return NewGallerySequence(p.Gallery)
}

// GallerySection returns the first section of gallery kind
func (p *Page) GallerySection() (SectionDecl, bool) {
	for _, s := range p.Sections {
		if s.SectionKind() == KindGallery {
			return s, true
		}
	}
	return SectionDecl{}, false
}

// TileRefs returns the reveal references of all gallery tiles in order
func (p *Page) TileRefs() []string {
	refs := make([]string, len(p.Gallery))
	for i, img := range p.Gallery {
		refs[i] = TileRef(img.ID)
	}
	return refs
}

// RevealRefs returns every reference that starts pending when the page mounts
func (p *Page) RevealRefs() []string {
	var refs []string
	for _, s := range p.Sections {
		if s.SectionKind() == KindGallery {
			refs = append(refs, s.TitleRef(), s.SubtitleRef())
			refs = append(refs, p.TileRefs()...)
		}
		refs = append(refs, s.AnimatableRefs()...)
	}
	return refs
}

// Counters returns every counter declared on the page
func (p *Page) Counters() []CounterSpec {
	var out []CounterSpec
	for _, s := range p.Sections {
		out = append(out, s.Counters...)
	}
	return out
}

// Validate checks the declaration for structural problems
func (p *Page) Validate() error {
	if len(p.Sections) == 0 {
		return &ValidationError{Field: "sections", Message: "at least one section is required"}
	}

	ids := make(map[string]bool, len(p.Sections))
	targets := make(map[string]bool)
	for i, s := range p.Sections {
		field := fmt.Sprintf("sections[%d]", i)
		if s.ID == "" {
			return &ValidationError{Field: field + ".id", Message: "is required"}
		}
		if ids[s.ID] {
			return &ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate section %q", s.ID)}
		}
		ids[s.ID] = true

		refs := make(map[string]bool, len(s.Blocks))
		for j, b := range s.Blocks {
			if b.Ref == "" {
				return &ValidationError{Field: fmt.Sprintf("%s.blocks[%d].ref", field, j), Message: "is required"}
			}
			if refs[b.Ref] {
				return &ValidationError{Field: fmt.Sprintf("%s.blocks[%d].ref", field, j), Message: fmt.Sprintf("duplicate block %q", b.Ref)}
			}
			refs[b.Ref] = true
		}

		for j, c := range s.Counters {
			cf := fmt.Sprintf("%s.counters[%d]", field, j)
			if c.Target == "" {
				return &ValidationError{Field: cf + ".target", Message: "is required"}
			}
			if targets[c.Target] {
				return &ValidationError{Field: cf + ".target", Message: fmt.Sprintf("duplicate display target %q", c.Target)}
			}
			targets[c.Target] = true
			if c.Value < 0 || c.DurationMs < 0 || c.DelayMs < 0 {
				return &ValidationError{Field: cf, Message: "value, duration_ms and delay_ms must be non-negative"}
			}
		}

		if s.Connector != nil && s.Connector.Ref == "" {
			return &ValidationError{Field: field + ".connector.ref", Message: "is required"}
		}
	}

	images := make(map[string]bool, len(p.Gallery))
	for i, img := range p.Gallery {
		if img.ID == "" {
			return &ValidationError{Field: fmt.Sprintf("gallery[%d].id", i), Message: "is required"}
		}
		if images[img.ID] {
			return &ValidationError{Field: fmt.Sprintf("gallery[%d].id", i), Message: fmt.Sprintf("duplicate image %q", img.ID)}
		}
		images[img.ID] = true
	}

	return nil
}
