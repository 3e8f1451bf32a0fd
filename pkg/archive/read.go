package archive

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/Sumatoshi-tech/iconpack/pkg/archive/iconfb"
)

// ErrCorruptArchive indicates bytes that do not decode as the expected archive kind.
var ErrCorruptArchive = errors.New("corrupt archive")

// minArchiveSize is the smallest buffer holding a root offset.
const minArchiveSize = flatbuffers.SizeUOffsetT

// IconRecord is a decoded Icon table.
type IconRecord struct {
	ID     string `json:"id"`
	Body   string `json:"body"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// IconSetSummary is the decoded header of an IconSet archive.
type IconSetSummary struct {
	Prefix   string   `json:"prefix"`
	Name     string   `json:"name"`
	Total    uint32   `json:"total"`
	Version  string   `json:"version,omitempty"`
	Category string   `json:"category,omitempty"`
	Author   string   `json:"author,omitempty"`
	License  string   `json:"license,omitempty"`
	Height   uint32   `json:"height"`
	Palette  bool     `json:"palette"`
	IDs      []string `json:"ids"`
}

// SvglRecord is a decoded SvglIcon table.
type SvglRecord struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	SVGContent string `json:"svg_content"`
	ViewBox    string `json:"viewbox,omitempty"`
	Width      uint32 `json:"width"`
	Height     uint32 `json:"height"`
}

// ReadIconSet decodes the header and icon ids of an IconSet archive.
func ReadIconSet(data []byte) (summary *IconSetSummary, err error) {
	defer recoverCorrupt(&err)

	if len(data) < minArchiveSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorruptArchive, len(data))
	}

	root := iconfb.GetRootAsIconSet(data, 0)
	summary = &IconSetSummary{Prefix: string(root.Prefix())}

	if info := root.Info(nil); info != nil {
		summary.Name = string(info.Name())
		summary.Total = info.Total()
		summary.Version = string(info.Version())
		summary.Category = string(info.Category())
		summary.Height = info.Height()
		summary.Palette = info.Palette()

		if author := info.Author(nil); author != nil {
			summary.Author = string(author.Name())
		}

		if license := info.License(nil); license != nil {
			summary.License = string(license.Spdx())
		}
	}

	n := root.IconsLength()
	summary.IDs = make([]string, 0, n)

	var icon iconfb.Icon

	for i := range n {
		root.Icons(&icon, i)
		summary.IDs = append(summary.IDs, string(icon.Id()))
	}

	return summary, nil
}

// LookupIcon binary-searches the sorted icon vector of an IconSet archive.
func LookupIcon(data []byte, id string) (record IconRecord, found bool, err error) {
	defer recoverCorrupt(&err)

	if len(data) < minArchiveSize {
		return IconRecord{}, false, fmt.Errorf("%w: %d bytes", ErrCorruptArchive, len(data))
	}

	var icon iconfb.Icon

	if !iconfb.GetRootAsIconSet(data, 0).IconsByKey(&icon, id) {
		return IconRecord{}, false, nil
	}

	return IconRecord{
		ID:     string(icon.Id()),
		Body:   string(icon.Body()),
		Width:  icon.Width(),
		Height: icon.Height(),
	}, true, nil
}

// ReadSvgCollection decodes the icon ids of an SvglCollection archive.
func ReadSvgCollection(data []byte) (ids []string, err error) {
	defer recoverCorrupt(&err)

	if len(data) < minArchiveSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorruptArchive, len(data))
	}

	root := iconfb.GetRootAsSvglCollection(data, 0)
	n := root.IconsLength()
	ids = make([]string, 0, n)

	var icon iconfb.SvglIcon

	for i := range n {
		root.Icons(&icon, i)
		ids = append(ids, string(icon.Id()))
	}

	return ids, nil
}

// LookupSvgl binary-searches the sorted icon vector of an SvglCollection archive.
func LookupSvgl(data []byte, id string) (record SvglRecord, found bool, err error) {
	defer recoverCorrupt(&err)

	if len(data) < minArchiveSize {
		return SvglRecord{}, false, fmt.Errorf("%w: %d bytes", ErrCorruptArchive, len(data))
	}

	var icon iconfb.SvglIcon

	if !iconfb.GetRootAsSvglCollection(data, 0).IconsByKey(&icon, id) {
		return SvglRecord{}, false, nil
	}

	return SvglRecord{
		ID:         string(icon.Id()),
		Filename:   string(icon.Filename()),
		SVGContent: string(icon.SvgContent()),
		ViewBox:    string(icon.Viewbox()),
		Width:      icon.Width(),
		Height:     icon.Height(),
	}, true, nil
}

// recoverCorrupt turns the index panics raised by the generated accessors on
// truncated input into ErrCorruptArchive.
func recoverCorrupt(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrCorruptArchive, r)
	}
}
