package codec

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"glpi-inventory/internal/domain"
)

// TableCodec writes a human readable host table
type TableCodec struct{}

// NewTableCodec creates a new table codec
func NewTableCodec() *TableCodec {
	return &TableCodec{}
}

// Format returns the codec format identifier
func (c *TableCodec) Format() string {
	return "table"
}

// Export writes one row per host in registration order
func (c *TableCodec) Export(inv *domain.Inventory, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Host", "GLPI ID"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetCaption(true, fmt.Sprintf("%d hosts", inv.Len()))

	for _, host := range inv.Hosts() {
		id := ""
		if assetID, ok := inv.AssetID(host); ok {
			id = strconv.Itoa(assetID)
		}
		table.Append([]string{host, id})
	}

	table.Render()
	return nil
}
