// Package codec renders an inventory in the formats Ansible and operators
// read: the dynamic inventory JSON document, a YAML inventory and a table.
package codec

import (
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"glpi-inventory/internal/domain"
)

// Exporter interface for exporting an inventory to various formats
type Exporter interface {
	Export(inv *domain.Inventory, w io.Writer) error
	Format() string
}

var exporters = map[string]func() Exporter{
	"json":  func() Exporter { return NewJSONCodec() },
	"yaml":  func() Exporter { return NewYAMLCodec() },
	"table": func() Exporter { return NewTableCodec() },
}

// Formats lists the supported export formats
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the exporter for a format name
func ForFormat(name string) (Exporter, error) {
	newExporter, ok := exporters[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unknown format %q (supported: %s)",
			name, strings.Join(Formats(), ", "))
	}
	return newExporter(), nil
}
