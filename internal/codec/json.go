package codec

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"glpi-inventory/internal/domain"
)

// JSONCodec writes the Ansible dynamic inventory document printed for --list
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

type listMeta struct {
	HostVars map[string]map[string]any `json:"hostvars"`
}

type listGroup struct {
	Children []string `json:"children,omitempty"`
	Hosts    []string `json:"hosts,omitempty"`
}

// Export writes the inventory; hosts keep their registration order
func (c *JSONCodec) Export(inv *domain.Inventory, w io.Writer) error {
	hosts := inv.Hosts()

	meta := listMeta{HostVars: make(map[string]map[string]any, len(hosts))}
	for _, host := range hosts {
		meta.HostVars[host] = inv.HostVars(host)
	}

	doc := map[string]any{
		"_meta":         meta,
		domain.GroupAll: listGroup{Children: []string{domain.GroupUngrouped}},
	}
	if len(hosts) > 0 {
		doc[domain.GroupUngrouped] = listGroup{Hosts: hosts}
	}

	return encodeJSON(w, doc)
}

// ExportHost writes the variables of one host, as printed for --host.
// Unknown hosts yield an empty object.
func ExportHost(inv *domain.Inventory, host string, w io.Writer) error {
	if !inv.HasHost(host) {
		return encodeJSON(w, map[string]any{})
	}
	return encodeJSON(w, inv.HostVars(host))
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode JSON")
	}

	return nil
}
