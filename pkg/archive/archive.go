// Package archive serializes the normalized icon model into the FlatBuffers
// layout described by schema/icon.fbs.
//
// Encoding is a pure function of the logical content. Icon-set entries are
// sorted by key and SVG icons by filename (byte-wise lexicographic) before
// they are written, so mapping iteration order and input slice order never
// reach the output. Absent numeric dimensions are written as 0; a reader
// cannot tell them apart from an explicit 0.
package archive

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/Sumatoshi-tech/iconpack/pkg/archive/iconfb"
	"github.com/Sumatoshi-tech/iconpack/pkg/model"
	"github.com/Sumatoshi-tech/iconpack/pkg/safeconv"
)

// Kind names an archive family.
type Kind string

const (
	// KindIconSet is one archive per JSON bundle.
	KindIconSet Kind = "iconset"
	// KindSvgl is the combined archive of standalone SVG files.
	KindSvgl Kind = "svgl"
)

// initialBufferSize is the starting builder capacity; the builder grows as needed.
const initialBufferSize = 1024

// EncodeIconSet encodes set as an IconSet archive.
func EncodeIconSet(set *model.IconSet) []byte {
	builder := flatbuffers.NewBuilder(initialBufferSize)

	icons := buildIcons(builder, set)
	info := buildInfo(builder, &set.Info)
	prefix := builder.CreateString(set.Prefix)

	iconfb.IconSetStart(builder)
	iconfb.IconSetAddPrefix(builder, prefix)
	iconfb.IconSetAddInfo(builder, info)
	iconfb.IconSetAddIcons(builder, icons)
	root := iconfb.IconSetEnd(builder)

	iconfb.FinishIconSetBuffer(builder, root)

	return builder.FinishedBytes()
}

func buildIcons(builder *flatbuffers.Builder, set *model.IconSet) flatbuffers.UOffsetT {
	names := set.SortedNames()
	offsets := make([]flatbuffers.UOffsetT, len(names))

	for i, name := range names {
		entry := set.Icons[name]

		id := builder.CreateString(name)
		body := builder.CreateString(entry.Body)

		iconfb.IconStart(builder)
		iconfb.IconAddId(builder, id)
		iconfb.IconAddBody(builder, body)
		iconfb.IconAddWidth(builder, safeconv.OptionalFloatToUint32(entry.Width))
		iconfb.IconAddHeight(builder, safeconv.OptionalFloatToUint32(entry.Height))
		offsets[i] = iconfb.IconEnd(builder)
	}

	iconfb.IconSetStartIconsVector(builder, len(offsets))

	return endOffsetVector(builder, offsets)
}

func buildInfo(builder *flatbuffers.Builder, info *model.IconSetInfo) flatbuffers.UOffsetT {
	name := builder.CreateString(info.Name)
	version := createOptionalString(builder, info.Version)
	category := createOptionalString(builder, info.Category)

	var author, license flatbuffers.UOffsetT

	if info.Author != nil {
		author = buildAuthor(builder, info.Author)
	}

	if info.License != nil {
		license = buildLicense(builder, info.License)
	}

	iconfb.IconInfoStart(builder)
	iconfb.IconInfoAddName(builder, name)
	iconfb.IconInfoAddTotal(builder, info.Total)

	if version != 0 {
		iconfb.IconInfoAddVersion(builder, version)
	}

	if author != 0 {
		iconfb.IconInfoAddAuthor(builder, author)
	}

	if license != 0 {
		iconfb.IconInfoAddLicense(builder, license)
	}

	iconfb.IconInfoAddHeight(builder, info.HeightOrDefault())

	if category != 0 {
		iconfb.IconInfoAddCategory(builder, category)
	}

	iconfb.IconInfoAddPalette(builder, info.PaletteOrDefault())

	return iconfb.IconInfoEnd(builder)
}

func buildAuthor(builder *flatbuffers.Builder, author *model.Author) flatbuffers.UOffsetT {
	name := builder.CreateString(author.Name)
	url := createOptionalString(builder, author.URL)

	iconfb.AuthorStart(builder)
	iconfb.AuthorAddName(builder, name)

	if url != 0 {
		iconfb.AuthorAddUrl(builder, url)
	}

	return iconfb.AuthorEnd(builder)
}

func buildLicense(builder *flatbuffers.Builder, license *model.License) flatbuffers.UOffsetT {
	title := builder.CreateString(license.Title)
	spdx := builder.CreateString(license.SPDX)
	url := createOptionalString(builder, license.URL)

	iconfb.LicenseStart(builder)
	iconfb.LicenseAddTitle(builder, title)
	iconfb.LicenseAddSpdx(builder, spdx)

	if url != 0 {
		iconfb.LicenseAddUrl(builder, url)
	}

	return iconfb.LicenseEnd(builder)
}

// EncodeSvgCollection encodes icons as one SvglCollection archive. Callers
// may concatenate icons from several sources beforehand.
func EncodeSvgCollection(icons []model.SvgIcon) []byte {
	builder := flatbuffers.NewBuilder(initialBufferSize)

	sorted := model.SortSvgIcons(icons)
	offsets := make([]flatbuffers.UOffsetT, len(sorted))

	for i := range sorted {
		offsets[i] = buildSvglIcon(builder, &sorted[i])
	}

	iconfb.SvglCollectionStartIconsVector(builder, len(offsets))
	vector := endOffsetVector(builder, offsets)

	iconfb.SvglCollectionStart(builder)
	iconfb.SvglCollectionAddIcons(builder, vector)
	root := iconfb.SvglCollectionEnd(builder)

	iconfb.FinishSvglCollectionBuffer(builder, root)

	return builder.FinishedBytes()
}

func buildSvglIcon(builder *flatbuffers.Builder, icon *model.SvgIcon) flatbuffers.UOffsetT {
	id := builder.CreateString(icon.Filename)
	filename := builder.CreateString(icon.Filename)
	content := builder.CreateString(icon.SVGContent)
	viewBox := createOptionalString(builder, icon.ViewBox)

	iconfb.SvglIconStart(builder)
	iconfb.SvglIconAddId(builder, id)
	iconfb.SvglIconAddFilename(builder, filename)
	iconfb.SvglIconAddSvgContent(builder, content)

	if viewBox != 0 {
		iconfb.SvglIconAddViewbox(builder, viewBox)
	}

	iconfb.SvglIconAddWidth(builder, safeconv.OptionalUint32(icon.Width))
	iconfb.SvglIconAddHeight(builder, safeconv.OptionalUint32(icon.Height))

	return iconfb.SvglIconEnd(builder)
}

// endOffsetVector finishes a vector started by a generated Start*Vector call.
// FlatBuffers vectors are built back to front.
func endOffsetVector(builder *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}

	return builder.EndVector(len(offsets))
}

func createOptionalString(builder *flatbuffers.Builder, s *string) flatbuffers.UOffsetT {
	if s == nil {
		return 0
	}

	return builder.CreateString(*s)
}
