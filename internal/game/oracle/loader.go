package oracle

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
)

// bookFile is the YAML layout of an oracle override file. Omitted tables keep
// their built-in text.
type bookFile struct {
	Weather      map[string]map[int]string `yaml:"weather"`
	Discovery    map[int]string            `yaml:"discovery"`
	Encounter    map[int]string            `yaml:"encounter"`
	Complication map[int]string            `yaml:"complication"`
}

// LoadBook reads the YAML override file at path and merges it over Default.
//
// Precondition: path must be a readable file.
// Postcondition: Returns a complete Book or a non-nil error. Every table the
// file names must define exactly rolls 1..6.
func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading oracle file %s: %w", path, err)
	}
	b, err := ParseBook(data)
	if err != nil {
		return nil, fmt.Errorf("parsing oracle file %s: %w", path, err)
	}
	return b, nil
}

// ParseBook decodes YAML override data and merges it over Default. Unknown
// fields are rejected.
func ParseBook(data []byte) (*Book, error) {
	var f bookFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	b := Default()
	for name, entries := range f.Weather {
		season, err := campaign.ParseSeason(name)
		if err != nil {
			return nil, fmt.Errorf("weather: %w", err)
		}
		t, err := NewTable("weather/"+string(season), entries)
		if err != nil {
			return nil, err
		}
		b.weather[season] = t
	}
	for c, entries := range map[Category]map[int]string{
		Discovery:    f.Discovery,
		Encounter:    f.Encounter,
		Complication: f.Complication,
	} {
		if entries == nil {
			continue
		}
		t, err := NewTable(string(c), entries)
		if err != nil {
			return nil, err
		}
		b.flat[c] = t
	}
	return b, nil
}
