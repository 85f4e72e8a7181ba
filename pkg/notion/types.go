package notion

import "encoding/json"

// RichText is a run of styled text; only the plain form is used.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// TextBlock is the payload shared by text-bearing block types.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// Block is a Notion block. Type-specific payloads are kept raw and decoded
// on demand by Text.
type Block struct {
	ID          string                     `json:"id"`
	Type        string                     `json:"type"`
	HasChildren bool                       `json:"has_children"`
	Payload     map[string]json.RawMessage `json:"-"`

	// Children is filled by FetchTree, not by the API.
	Children []Block `json:"-"`
}

// UnmarshalJSON keeps the type-specific payload keyed by block type.
func (b *Block) UnmarshalJSON(data []byte) error {
	type alias Block
	var base alias
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Block(base)
	b.Payload = raw
	return nil
}

// Text joins the plain text of the block's rich_text runs.
func (b Block) Text() string {
	raw, ok := b.Payload[b.Type]
	if !ok {
		return ""
	}
	var tb TextBlock
	if err := json.Unmarshal(raw, &tb); err != nil {
		return ""
	}
	out := ""
	for _, rt := range tb.RichText {
		out += rt.PlainText
	}
	return out
}

// BlockList is one page of GET /blocks/{id}/children.
type BlockList struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// apiError is the error body returned by the Notion API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
