package core

import (
	"encoding/json"
	"sort"
)

type ManifestEntry struct {
	HTML     string            `json:"html"`
	Title    string            `json:"title,omitempty"`
	Images   map[string]string `json:"images,omitempty"`
	Files    []string          `json:"files,omitempty"`
	HasVideo bool              `json:"hasVideo,omitempty"`
}

type Manifest struct {
	Version int                      `json:"version"`
	Pages   map[string]ManifestEntry `json:"pages"`
}

func NewManifest() *Manifest {
	return &Manifest{Version: 1, Pages: map[string]ManifestEntry{}}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Pages == nil {
		m.Pages = map[string]ManifestEntry{}
	}
	return &m, nil
}

func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (m *Manifest) URLs() []string {
	if m == nil {
		return nil
	}
	urls := make([]string, 0, len(m.Pages))
	for u := range m.Pages {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}
