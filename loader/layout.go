package loader

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/kerker/types"
)

// layoutFile is the XML room layout:
//
//	<layout>
//	  <location id="1" north="2" name="Gate" enemies="Rat" visible="Gold;Torch">
//	    <description>A rusted gate.</description>
//	  </location>
//	</layout>
type layoutFile struct {
	XMLName   xml.Name         `xml:"layout"`
	Locations []layoutLocation `xml:"location"`
}

type layoutLocation struct {
	ID          int    `xml:"id,attr"`
	Name        string `xml:"name,attr"`
	North       int    `xml:"north,attr"`
	East        int    `xml:"east,attr"`
	South       int    `xml:"south,attr"`
	West        int    `xml:"west,attr"`
	Enemies     string `xml:"enemies,attr"`
	Hidden      string `xml:"hidden,attr"`
	Visible     string `xml:"visible,attr"`
	Description string `xml:"description"`
}

// LoadLayout reads room definitions from an XML layout file.
func LoadLayout(path string) ([]types.RoomDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", path, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes an XML layout document into room definitions, in
// document order.
func ParseLayout(data []byte) ([]types.RoomDef, error) {
	var lf layoutFile
	if err := xml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	rooms := make([]types.RoomDef, 0, len(lf.Locations))
	for _, loc := range lf.Locations {
		rooms = append(rooms, types.RoomDef{
			ID:          loc.ID,
			Name:        loc.Name,
			Description: strings.TrimSpace(loc.Description),
			North:       loc.North,
			East:        loc.East,
			South:       loc.South,
			West:        loc.West,
			Enemies:     SplitList(loc.Enemies),
			Hidden:      SplitList(loc.Hidden),
			Visible:     SplitList(loc.Visible),
		})
	}
	return rooms, nil
}
