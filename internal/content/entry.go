// Package content models the JSON shapes delivered by the headless CMS:
// entries, ordered content blocks and typed references.
package content

import "sort"

// Block is one CMS-authored unit of page content. The delivery API encodes a
// block as an object with a single significant key (the content type name)
// whose value is the block's field bag.
type Block struct {
	Type  string
	Props Props
}

// Reference is one element of a typed reference list. The referenced entry's
// own fields are flattened into the same object alongside the discriminator
// and uid.
type Reference struct {
	ContentTypeUID string
	UID            string
	Fields         Props
}

// BlockFrom extracts the Block from a raw block object. Keys with a leading
// underscore (delivery metadata such as _metadata) are not significant. When
// more than one significant key is present the lexicographically first wins,
// which keeps extraction deterministic regardless of map iteration order.
// Returns false when no significant key with an object value exists.
func BlockFrom(raw map[string]any) (Block, bool) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if k == "" || k[0] == '_' {
			continue
		}
		if _, ok := raw[k].(map[string]any); !ok {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return Block{}, false
	}
	sort.Strings(keys)
	key := keys[0]
	return Block{Type: key, Props: Props(raw[key].(map[string]any))}, true
}

// BlocksFrom converts a parsed JSON list into an ordered Block sequence.
// Elements that are not block-shaped are skipped; order is preserved.
func BlocksFrom(list []any) []Block {
	var blocks []Block
	for _, item := range list {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if block, ok := BlockFrom(raw); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// ReferenceFrom builds a Reference from a raw reference object. The
// content_type_uid and uid keys are lifted out; everything else stays in
// Fields.
func ReferenceFrom(raw map[string]any) *Reference {
	fields := make(Props, len(raw))
	for k, v := range raw {
		fields[k] = v
	}
	return &Reference{
		ContentTypeUID: Props(raw).String("content_type_uid"),
		UID:            Props(raw).String("uid"),
		Fields:         fields,
	}
}

// ReferencesFrom converts a parsed JSON list into an ordered Reference
// sequence. Null or non-object entries are kept as nil slots so the output
// length always equals the input length.
func ReferencesFrom(list []any) []*Reference {
	refs := make([]*Reference, len(list))
	for i, item := range list {
		if raw, ok := item.(map[string]any); ok {
			refs[i] = ReferenceFrom(raw)
		}
	}
	return refs
}

// Page is a renderable page entry fetched from the delivery API.
type Page struct {
	UID    string
	URL    string
	Title  string
	Locale string
	Blocks []Block
	Fields Props
}

// PageFrom builds a Page from a raw entry object. The ordered block sequence
// is read from the entry's "components" field.
func PageFrom(raw map[string]any) *Page {
	fields := Props(raw)
	return &Page{
		UID:    fields.String("uid"),
		URL:    fields.String("url"),
		Title:  fields.String("title"),
		Locale: fields.String("locale"),
		Blocks: BlocksFrom(fields.Slice("components")),
		Fields: fields,
	}
}

// Layout holds the shared chrome entries rendered around every page.
type Layout struct {
	Header Props
	Footer Props
}
