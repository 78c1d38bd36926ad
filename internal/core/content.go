package core

type FileType string

const (
	FileImage FileType = "image"
	FileVideo FileType = "video"
	FileAudio FileType = "audio"
	FileText  FileType = "text"
	FileOther FileType = "other"
)

type File struct {
	ID          string
	Type        FileType
	Filename    string
	URL         string
	ContentType string
}

type PageRef struct {
	URL string
}

type Source struct {
	Provider string
	ID       string
	URL      string
	Title    string
}

// Setlist is kept behind a pointer on Page so an absent setlist and an empty
// one stay distinguishable.
type Setlist struct {
	Songs []string
}

type Page struct {
	Title   string
	Name    string
	URL     string
	Files   map[string]File
	Pages   []PageRef
	Sources []Source
	Setlist *Setlist
	Ratio   float64
	Offline string
	Text    string
}

func (p *Page) File(id string) (File, bool) {
	if p == nil || p.Files == nil {
		return File{}, false
	}
	f, ok := p.Files[id]
	return f, ok
}

func (p *Page) HasSources() bool {
	return p != nil && len(p.Sources) > 0
}

func (p *Page) HasSetlist() bool {
	return p != nil && p.Setlist != nil
}

type Content map[string]*Page

func (c Content) Lookup(url string) (*Page, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c[NormalizePath(url)]
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// OfflineText is the fallback text configured on the root page.
func (c Content) OfflineText() string {
	if root, ok := c.Lookup("/"); ok {
		return root.Offline
	}
	return ""
}

type Query struct {
	Image string
}

type Events struct {
	PushState string
}

const EventPushState = "pushState"

func DefaultEvents() Events {
	return Events{PushState: EventPushState}
}

type State struct {
	Page    *Page
	Query   Query
	Content Content
	Events  Events
	Online  bool
}

type Emitter func(name string, payload any)
