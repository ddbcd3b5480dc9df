package giphy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexInt decodes an integer that Giphy may send as a JSON number, a numeric
// string, or null.
type flexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", s, err)
	}
	*f = flexInt(n)
	return nil
}

// searchEnvelope mirrors the upstream search response body
type searchEnvelope struct {
	Data       []gifRecord    `json:"data"`
	Pagination paginationData `json:"pagination"`
	Meta       metaData       `json:"meta"`
}

type metaData struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

type paginationData struct {
	TotalCount int `json:"total_count"`
	Count      int `json:"count"`
	Offset     int `json:"offset"`
}

// gifRecord is one raw upstream result. The image renditions stay raw so a
// malformed section fails only its own record, not the whole envelope decode.
type gifRecord struct {
	ID             string                     `json:"id"`
	Title          string                     `json:"title"`
	URL            string                     `json:"url"`
	Rating         string                     `json:"rating"`
	ImportDatetime string                     `json:"import_datetime"`
	Tags           []string                   `json:"tags"`
	Images         map[string]json.RawMessage `json:"images"`
}

type imageRendition struct {
	URL    string  `json:"url"`
	Width  flexInt `json:"width"`
	Height flexInt `json:"height"`
	Size   flexInt `json:"size"`
}

// Upstream rendition names for the three assets we expose
const (
	renditionOriginal  = "original"
	renditionPreview   = "fixed_height_small"
	renditionThumbnail = "fixed_height_small_still"
)

// transformRecord converts one upstream record into a SearchItem. A missing
// rendition degrades to a zero-value asset; a malformed one drops the record.
func transformRecord(rec gifRecord) (SearchItem, error) {
	original, err := transformAsset(rec.Images, renditionOriginal)
	if err != nil {
		return SearchItem{}, err
	}
	preview, err := transformAsset(rec.Images, renditionPreview)
	if err != nil {
		return SearchItem{}, err
	}
	thumbnail, err := transformAsset(rec.Images, renditionThumbnail)
	if err != nil {
		return SearchItem{}, err
	}

	return SearchItem{
		ID:        rec.ID,
		Title:     rec.Title,
		SourceURL: rec.URL,
		Rating:    rec.Rating,
		CreatedAt: rec.ImportDatetime,
		Tags:      rec.Tags,
		Original:  original,
		Preview:   preview,
		Thumbnail: thumbnail,
	}, nil
}

func transformAsset(images map[string]json.RawMessage, name string) (ImageAsset, error) {
	raw, ok := images[name]
	if !ok || string(raw) == "null" {
		return ImageAsset{}, nil
	}

	var r imageRendition
	if err := json.Unmarshal(raw, &r); err != nil {
		return ImageAsset{}, fmt.Errorf("malformed %s rendition: %w", name, err)
	}
	if r.Width < 0 || r.Height < 0 || r.Size < 0 {
		return ImageAsset{}, fmt.Errorf("negative dimensions in %s rendition", name)
	}

	return ImageAsset{
		URL:       r.URL,
		Width:     int(r.Width),
		Height:    int(r.Height),
		SizeBytes: int(r.Size),
	}, nil
}

// transformEnvelope converts every well-formed record and reports upstream's
// own pagination untouched. Records that fail the transform are dropped and
// logged; a partial result is an expected outcome, not an error.
func (c *Client) transformEnvelope(env *searchEnvelope) ([]SearchItem, PageInfo) {
	items := make([]SearchItem, 0, len(env.Data))
	for _, rec := range env.Data {
		item, err := transformRecord(rec)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("gif_id", rec.ID).
				Msg("Dropping malformed record from search results")
			continue
		}
		items = append(items, item)
	}

	page := PageInfo{
		TotalAvailable: max(0, env.Pagination.TotalCount),
		ReturnedCount:  max(0, env.Pagination.Count),
		Offset:         max(0, env.Pagination.Offset),
	}
	return items, page
}
