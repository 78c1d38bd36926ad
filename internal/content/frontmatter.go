package content

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

type frontMatter struct {
	Title   string              `yaml:"title"`
	Name    string              `yaml:"name"`
	Offline string              `yaml:"offline"`
	Ratio   float64             `yaml:"ratio"`
	Pages   []string            `yaml:"pages"`
	Sources []sourceFrontMatter `yaml:"sources"`
	Setlist *setlistFrontMatter `yaml:"setlist"`
}

type sourceFrontMatter struct {
	Provider string `yaml:"provider"`
	ID       string `yaml:"id"`
	URL      string `yaml:"url"`
	Title    string `yaml:"title"`
}

// setlistFrontMatter accepts either a list of names or a mapping. Mapping
// entries with integer keys come first in ascending order, the rest keep
// their document order. Null names are rejected.
type setlistFrontMatter struct {
	songs []string
}

func (s *setlistFrontMatter) UnmarshalYAML(data []byte) error {
	var list []*string
	if err := yaml.Unmarshal(data, &list); err == nil {
		s.songs = make([]string, 0, len(list))
		for i, name := range list {
			if name == nil {
				return fmt.Errorf("setlist item %d: missing song name", i)
			}
			s.songs = append(s.songs, strings.TrimSpace(*name))
		}
		return nil
	}

	var items yaml.MapSlice
	if err := yaml.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("setlist must be a list or a mapping: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, aok := integerKey(items[i].Key)
		b, bok := integerKey(items[j].Key)
		switch {
		case aok && bok:
			return a < b
		case aok:
			return true
		default:
			return false
		}
	})

	s.songs = make([]string, 0, len(items))
	for _, item := range items {
		name, err := songName(item)
		if err != nil {
			return err
		}
		s.songs = append(s.songs, name)
	}
	return nil
}

func songName(item yaml.MapItem) (string, error) {
	switch v := item.Value.(type) {
	case nil:
		return "", fmt.Errorf("setlist key %v: missing song name", item.Key)
	case string:
		return strings.TrimSpace(v), nil
	case []any, map[string]any, yaml.MapSlice:
		return "", fmt.Errorf("setlist key %v: song name must be a scalar", item.Key)
	default:
		return fmt.Sprint(v), nil
	}
}

func integerKey(k any) (uint64, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(fmt.Sprint(k)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func parseFrontMatter(fm string) (frontMatter, error) {
	var front frontMatter
	if strings.TrimSpace(fm) == "" {
		return front, nil
	}
	if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
		return frontMatter{}, err
	}
	return front, nil
}
