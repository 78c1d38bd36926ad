package view

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/shuffle"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func image(id, name string) core.File {
	return core.File{ID: id, Type: core.FileImage, Filename: name, URL: "/files/" + name}
}

func newState(page *core.Page) core.State {
	return core.State{
		Page:    page,
		Content: core.Content{page.URL: page},
		Events:  core.DefaultEvents(),
		Online:  true,
	}
}

func deterministic() *Renderer {
	return NewRenderer(WithShuffle(shuffle.Identity[core.File]))
}

func listingRows(t *testing.T, tree *vdom.VNode) [][2]string {
	t.Helper()
	list := vdom.Find(tree, vdom.HasClass("page-listing"))
	if list == nil {
		t.Fatal("listing missing")
	}
	var rows [][2]string
	for _, li := range list.Children {
		rows = append(rows, [2]string{
			vdom.TextContent(vdom.Find(li, vdom.HasClass("c2"))),
			vdom.TextContent(vdom.Find(li, vdom.HasClass("c10"))),
		})
	}
	return rows
}

func TestRenderExample(t *testing.T) {
	page := &core.Page{
		Title: "Shows",
		URL:   "/shows",
		Files: map[string]core.File{
			"a": {ID: "a", Type: core.FileImage, Filename: "x.jpg", URL: "/files/shows/x.jpg"},
			"b": {ID: "b", Type: core.FileVideo, Filename: "y.mp4", URL: "/files/shows/y.mp4"},
		},
	}

	tree, err := NewRenderer().Render(newState(page), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	rows := listingRows(t, tree)
	if len(rows) != 1 || rows[0] != [2]string{"00", "x.jpg"} {
		t.Errorf("listing = %v, want [[00 x.jpg]]", rows)
	}
	if vdom.Find(tree, vdom.HasClass("page-videos")) != nil {
		t.Error("no sources, so no video section")
	}
	if vdom.Find(tree, vdom.HasClass("page-setlist")) != nil {
		t.Error("no setlist section expected")
	}
}

func TestRenderOnlyImagesReachGridAndListing(t *testing.T) {
	page := &core.Page{
		Title: "Mixed",
		URL:   "/mixed",
		Files: map[string]core.File{
			"1.jpg":     image("1.jpg", "1.jpg"),
			"2.png":     image("2.png", "2.png"),
			"clip.mp4":  {ID: "clip.mp4", Type: core.FileVideo, Filename: "clip.mp4"},
			"song.mp3":  {ID: "song.mp3", Type: core.FileAudio, Filename: "song.mp3"},
			"notes.txt": {ID: "notes.txt", Type: core.FileText, Filename: "notes.txt"},
		},
	}

	tree, err := deterministic().Render(newState(page), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	grid := vdom.Find(tree, vdom.HasClass("image-grid"))
	if grid == nil {
		t.Fatal("grid missing")
	}
	imgs := vdom.FindAll(grid, vdom.IsTag("img"))
	if len(imgs) != 2 {
		t.Errorf("grid images = %d, want 2", len(imgs))
	}
	for _, img := range imgs {
		if !strings.HasSuffix(img.Attr("src"), ".jpg") && !strings.HasSuffix(img.Attr("src"), ".png") {
			t.Errorf("non-image in grid: %s", img.Attr("src"))
		}
	}

	rows := listingRows(t, tree)
	want := [][2]string{{"00", "1.jpg"}, {"01", "2.png"}}
	if !slices.Equal(rows, want) {
		t.Errorf("listing = %v, want %v", rows, want)
	}
}

func TestRenderListingIndexWidens(t *testing.T) {
	files := map[string]core.File{}
	for i := range 101 {
		name := fmt.Sprintf("%03d.jpg", i)
		files[name] = image(name, name)
	}
	page := &core.Page{Title: "Many", URL: "/many", Files: files}

	tree, err := deterministic().Render(newState(page), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	rows := listingRows(t, tree)
	if len(rows) != 101 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][0] != "00" || rows[9][0] != "09" || rows[10][0] != "10" || rows[99][0] != "99" || rows[100][0] != "100" {
		t.Errorf("indices = %s %s %s %s %s", rows[0][0], rows[9][0], rows[10][0], rows[99][0], rows[100][0])
	}
}

func TestRenderLightboxPrecedence(t *testing.T) {
	page := &core.Page{
		Title:   "Shows",
		URL:     "/shows",
		Files:   map[string]core.File{"a.jpg": image("a.jpg", "a.jpg")},
		Sources: []core.Source{{Provider: "youtube", ID: "abc"}},
		Setlist: &core.Setlist{Songs: []string{"One"}},
	}

	tests := []struct {
		name      string
		image     string
		wantClass string
	}{
		{"known image", "a.jpg", "lightbox-image"},
		{"whitespace id", " ", "lightbox-missing"},
		{"padded id is not trimmed", " a.jpg ", "lightbox-missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState(page)
			state.Query.Image = tt.image

			tree, err := deterministic().Render(state, nil)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			if !vdom.HasClass("lightbox")(tree) {
				t.Fatalf("root = %q, want lightbox", tree.Class())
			}
			for _, class := range []string{"page-header", "page-videos", "page-setlist", "image-grid", "page-listing"} {
				if vdom.Find(tree, vdom.HasClass(class)) != nil {
					t.Errorf("lightbox should not contain %s", class)
				}
			}
			if vdom.Find(tree, vdom.HasClass(tt.wantClass)) == nil {
				t.Errorf("lightbox missing .%s", tt.wantClass)
			}
		})
	}

	state := newState(page)
	state.Query.Image = "a.jpg"
	tree, _ := deterministic().Render(state, nil)
	img := vdom.Find(tree, vdom.HasClass("lightbox-image"))
	if img == nil || img.Attr("src") != "/files/a.jpg" {
		t.Errorf("lightbox image = %v", img)
	}
}

func TestRenderLightboxMissingImage(t *testing.T) {
	page := &core.Page{Title: "Shows", URL: "/shows", Files: map[string]core.File{}}
	state := newState(page)
	state.Query.Image = "nope.jpg"

	tree, err := deterministic().Render(state, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if vdom.Find(tree, vdom.HasClass("lightbox-missing")) == nil {
		t.Error("expected placeholder for a missing image")
	}
}

func TestRenderLightboxCloseEmitsOnce(t *testing.T) {
	page := &core.Page{Title: "Shows", URL: "/shows", Files: map[string]core.File{"a.jpg": image("a.jpg", "a.jpg")}}

	tests := []struct {
		name   string
		events core.Events
		want   string
	}{
		{"configured event", core.Events{PushState: "navigate"}, "navigate"},
		{"default event", core.Events{}, core.EventPushState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newState(page)
			state.Events = tt.events
			state.Query.Image = "a.jpg"

			type call struct {
				name    string
				payload any
			}
			var calls []call
			emit := func(name string, payload any) { calls = append(calls, call{name, payload}) }

			tree, err := deterministic().Render(state, emit)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if len(calls) != 0 {
				t.Fatalf("render must not emit, got %v", calls)
			}

			tree.OnClick()

			if len(calls) != 1 {
				t.Fatalf("calls = %d, want 1", len(calls))
			}
			if calls[0].name != tt.want || calls[0].payload != "/shows" {
				t.Errorf("emit(%q, %v), want (%q, /shows)", calls[0].name, calls[0].payload, tt.want)
			}
		})
	}
}

func TestRenderLightboxNilEmitter(t *testing.T) {
	page := &core.Page{Title: "Shows", URL: "/shows", Files: map[string]core.File{"a.jpg": image("a.jpg", "a.jpg")}}
	state := newState(page)
	state.Query.Image = "a.jpg"

	tree, err := deterministic().Render(state, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	tree.OnClick()
}

func TestRenderConditionalSections(t *testing.T) {
	base := func() *core.Page {
		return &core.Page{Title: "Shows", URL: "/shows", Files: map[string]core.File{}}
	}

	tests := []struct {
		name        string
		page        *core.Page
		wantVideos  bool
		wantSetlist bool
	}{
		{"neither", base(), false, false},
		{"videos", func() *core.Page {
			p := base()
			p.Sources = []core.Source{{Provider: "youtube", ID: "a"}, {Provider: "vimeo", ID: "b"}}
			return p
		}(), true, false},
		{"setlist", func() *core.Page {
			p := base()
			p.Setlist = &core.Setlist{Songs: []string{"Intro", "Outro"}}
			return p
		}(), false, true},
		{"empty sources slice", func() *core.Page {
			p := base()
			p.Sources = []core.Source{}
			return p
		}(), false, false},
		{"both", func() *core.Page {
			p := base()
			p.Sources = []core.Source{{Provider: "youtube", ID: "a"}}
			p.Setlist = &core.Setlist{}
			return p
		}(), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := deterministic().Render(newState(tt.page), nil)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			videos := vdom.Find(tree, vdom.HasClass("page-videos"))
			if (videos != nil) != tt.wantVideos {
				t.Errorf("videos present = %v, want %v", videos != nil, tt.wantVideos)
			}
			if videos != nil && len(videos.Children) != len(tt.page.Sources) {
				t.Errorf("video blocks = %d, want %d", len(videos.Children), len(tt.page.Sources))
			}
			setlist := vdom.Find(tree, vdom.HasClass("page-setlist"))
			if (setlist != nil) != tt.wantSetlist {
				t.Errorf("setlist present = %v, want %v", setlist != nil, tt.wantSetlist)
			}
		})
	}
}

func TestRenderSetlistRows(t *testing.T) {
	page := &core.Page{
		Title:   "Gig",
		URL:     "/gig",
		Files:   map[string]core.File{},
		Setlist: &core.Setlist{Songs: []string{"Intro", "Anthem", "Encore"}},
	}

	tree, err := deterministic().Render(newState(page), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	items := vdom.FindAll(vdom.Find(tree, vdom.HasClass("page-setlist")), vdom.IsTag("li"))
	if len(items) != 3 {
		t.Fatalf("items = %d", len(items))
	}
	if got := vdom.TextContent(items[2]); got != "02Encore" {
		t.Errorf("third item = %q", got)
	}
}

func TestRenderShuffleIsPermutation(t *testing.T) {
	files := map[string]core.File{}
	for _, n := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg", "f.mp4"} {
		f := image(n, n)
		if strings.HasSuffix(n, ".mp4") {
			f.Type = core.FileVideo
		}
		files[n] = f
	}
	page := &core.Page{Title: "P", URL: "/p", Files: files}

	want := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	for range 10 {
		tree, err := NewRenderer().Render(newState(page), nil)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		var got []string
		for _, row := range listingRows(t, tree) {
			got = append(got, row[1])
		}
		sort.Strings(got)
		if !slices.Equal(got, want) {
			t.Fatalf("listing %v is not a permutation of %v", got, want)
		}
	}
}

func TestRenderNavigation(t *testing.T) {
	root := &core.Page{
		Title: "Index",
		Name:  "Index",
		URL:   "/",
		Files: map[string]core.File{},
		Pages: []core.PageRef{{URL: "/shows"}, {URL: "/missing"}, {URL: "/about"}},
	}
	shows := &core.Page{Title: "Shows", Name: "Live shows", URL: "/shows", Files: map[string]core.File{}}
	about := &core.Page{Title: "About", Name: "About", URL: "/about", Files: map[string]core.File{}}
	state := newState(root)
	state.Content = core.Content{"/": root, "/shows": shows, "/about": about}

	tree, err := deterministic().Render(state, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	nav := vdom.Find(tree, vdom.HasClass("page-nav"))
	if nav == nil {
		t.Fatal("navigation missing")
	}
	links := vdom.FindAll(nav, vdom.IsTag("a"))
	if len(links) != 2 {
		t.Fatalf("links = %d, want 2 (missing ref skipped)", len(links))
	}
	if links[0].Attr("href") != "/shows" || vdom.TextContent(links[0]) != "Live shows" {
		t.Errorf("first link = %s %q", links[0].Attr("href"), vdom.TextContent(links[0]))
	}
}

func TestRenderOfflineVideo(t *testing.T) {
	root := &core.Page{Title: "Index", URL: "/", Files: map[string]core.File{}, Offline: "Watch online"}
	page := &core.Page{
		Title:   "Gig",
		URL:     "/gig",
		Files:   map[string]core.File{},
		Sources: []core.Source{{Provider: "youtube", ID: "abc"}},
	}
	state := newState(page)
	state.Content = core.Content{"/": root, "/gig": page}
	state.Online = false

	tree, err := deterministic().Render(state, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	offline := vdom.Find(tree, vdom.HasClass("video-offline"))
	if offline == nil || vdom.TextContent(offline) != "Watch online" {
		t.Errorf("offline block = %v", offline)
	}
	if vdom.Find(tree, vdom.IsTag("iframe")) != nil {
		t.Error("offline render should not embed")
	}
}

func TestRenderImageHref(t *testing.T) {
	page := &core.Page{Title: "P", URL: "/p", Files: map[string]core.File{"a.jpg": image("a.jpg", "a.jpg")}}
	r := NewRenderer(
		WithShuffle(shuffle.Identity[core.File]),
		WithImageHref(func(p *core.Page, f core.File) string { return core.LightboxExportURL(p.URL, f.ID) }),
	)

	tree, err := r.Render(newState(page), nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	a := vdom.Find(vdom.Find(tree, vdom.HasClass("image-grid")), vdom.IsTag("a"))
	if a.Attr("href") != "/p/image/a.jpg/" {
		t.Errorf("href = %q", a.Attr("href"))
	}
}

func TestRenderMalformed(t *testing.T) {
	tests := []struct {
		name  string
		state core.State
	}{
		{"nil page", core.State{}},
		{"nil files", core.State{Page: &core.Page{URL: "/x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deterministic().Render(tt.state, nil)
			if !errors.Is(err, core.ErrMalformedPage) {
				t.Errorf("error = %v, want ErrMalformedPage", err)
			}
		})
	}
}

func TestImagesNaturalOrder(t *testing.T) {
	page := &core.Page{Files: map[string]core.File{
		"img10.jpg": image("img10.jpg", "img10.jpg"),
		"img2.jpg":  image("img2.jpg", "img2.jpg"),
		"img1.jpg":  image("img1.jpg", "img1.jpg"),
	}}

	var ids []string
	for _, f := range Images(page) {
		ids = append(ids, f.ID)
	}
	if !slices.Equal(ids, []string{"img1.jpg", "img2.jpg", "img10.jpg"}) {
		t.Errorf("Images() order = %v", ids)
	}
	if Images(nil) != nil {
		t.Error("Images(nil) should be nil")
	}
}

func TestRenderGallerySnapshot(t *testing.T) {
	root := &core.Page{Title: "Index", Name: "Index", URL: "/", Files: map[string]core.File{}, Offline: "Offline"}
	page := &core.Page{
		Title: "Spring Tour",
		Name:  "Spring Tour",
		URL:   "/tour",
		Files: map[string]core.File{
			"01.jpg":     image("01.jpg", "01.jpg"),
			"02.jpg":     image("02.jpg", "02.jpg"),
			"poster.pdf": {ID: "poster.pdf", Type: core.FileOther, Filename: "poster.pdf"},
		},
		Pages:   []core.PageRef{{URL: "/"}},
		Sources: []core.Source{{Provider: "youtube", ID: "xyz", Title: "Opening night"}},
		Setlist: &core.Setlist{Songs: []string{"Intro", "Single"}},
		Text:    "<p>Two nights &amp; one encore.</p>",
	}
	state := newState(page)
	state.Content = core.Content{"/": root, "/tour": page}

	tree, err := deterministic().Render(state, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out, err := vdom.RenderString(tree)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, out)
}
