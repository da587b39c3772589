package codec

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"glpi-inventory/internal/domain"
)

// YAMLCodec writes an Ansible YAML inventory
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Export writes the inventory with every host under all.children.ungrouped.
// Hosts keep their registration order, variables are sorted by name.
func (c *YAMLCodec) Export(inv *domain.Inventory, w io.Writer) error {
	hosts := mappingNode()
	for _, host := range inv.Hosts() {
		vars := &yaml.Node{}
		if err := vars.Encode(inv.HostVars(host)); err != nil {
			return errors.Wrapf(err, "failed to encode variables of %s", host)
		}
		hosts.Content = append(hosts.Content, stringNode(host), vars)
	}

	ungrouped := mappingNode()
	if len(hosts.Content) > 0 {
		ungrouped.Content = append(ungrouped.Content, stringNode("hosts"), hosts)
	}

	children := mappingNode(stringNode(domain.GroupUngrouped), ungrouped)
	all := mappingNode(stringNode("children"), children)
	doc := mappingNode(stringNode(domain.GroupAll), all)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode Ansible inventory")
	}

	return nil
}

func mappingNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: content}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
