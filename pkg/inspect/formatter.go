package inspect

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type, operation and label information
	ShowMetadata bool

	// ShowNames includes short resource names alongside IDs
	ShowNames bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		ShowNames:    true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a payload of the given type for display.
func (f *Formatter) FormatValue(typ schema.ResourceType, payload []byte) string {
	if typ == schema.TypeString {
		return strconv.Quote(string(payload))
	}
	if len(payload) == 0 {
		return "(unset)"
	}

	switch typ {
	case schema.TypeBoolean:
		return strconv.FormatBool(DecodeBool(payload))

	case schema.TypeTime:
		sec, err := strconv.ParseInt(strings.TrimSpace(string(payload)), 10, 64)
		if err != nil {
			return string(payload)
		}
		return fmt.Sprintf("%d (%s)", sec, time.Unix(sec, 0).UTC().Format(time.RFC3339))

	case schema.TypeInteger, schema.TypeFloat:
		return string(payload)

	default:
		return fmt.Sprintf("0x%x", payload)
	}
}

// FormatTree formats objects as an indented tree.
func (f *Formatter) FormatTree(objs []ObjectInfo) string {
	if len(objs) == 0 {
		return "(no objects)\n"
	}

	var sb strings.Builder
	for _, obj := range objs {
		head := "/" + obj.ID
		if obj.Name != "" {
			head += " " + obj.Name
		}
		sb.WriteString(head + "\n")

		for _, inst := range obj.Instances {
			sb.WriteString(f.Indent(1, fmt.Sprintf("/%s/%d\n", obj.ID, inst.ID)))
			for _, res := range inst.Resources {
				f.writeResource(&sb, res)
			}
		}
	}
	return sb.String()
}

func (f *Formatter) writeResource(sb *strings.Builder, res ResourceInfo) {
	label := res.ID
	if f.ShowNames && res.Name != "" {
		label += " " + res.Name
	}

	meta := ""
	if f.ShowMetadata {
		meta = fmt.Sprintf(" (%s, %s", res.Type, res.Operation)
		if res.Observable {
			meta += ", observable"
		}
		if res.Label != "" {
			meta += ", " + res.Label
		}
		meta += ")"
	}

	if !res.Multiple {
		sb.WriteString(f.Indent(2, fmt.Sprintf("%s: %s%s\n", label, f.FormatValue(res.Type, res.Value), meta)))
		return
	}

	sb.WriteString(f.Indent(2, fmt.Sprintf("%s:%s\n", label, meta)))
	for _, ri := range res.Instances {
		sb.WriteString(f.Indent(3, fmt.Sprintf("[%d] %s\n", ri.Index, f.FormatValue(res.Type, ri.Value))))
	}
}
