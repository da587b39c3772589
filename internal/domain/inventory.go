package domain

const (
	// GroupAll is the root group every inventory has
	GroupAll = "all"
	// GroupUngrouped holds hosts registered without an explicit group
	GroupUngrouped = "ungrouped"

	// VarAssetID is the host variable carrying the GLPI asset identifier
	VarAssetID = "glpi_id"
)

// Inventory is the host registry populated by an inventory source
type Inventory struct {
	hosts []string
	vars  map[string]map[string]any
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		hosts: make([]string, 0),
		vars:  make(map[string]map[string]any),
	}
}

// AddHost registers a host. Re-adding an existing host keeps its
// original position and variables.
func (inv *Inventory) AddHost(name string) {
	if _, exists := inv.vars[name]; exists {
		return
	}
	inv.hosts = append(inv.hosts, name)
	inv.vars[name] = make(map[string]any)
}

// SetVariable sets a host variable, registering the host if needed.
// Later values overwrite earlier ones.
func (inv *Inventory) SetVariable(host, key string, value any) {
	inv.AddHost(host)
	inv.vars[host][key] = value
}

// GetVariable gets a host variable
func (inv *Inventory) GetVariable(host, key string) (any, bool) {
	vars, ok := inv.vars[host]
	if !ok {
		return nil, false
	}
	val, ok := vars[key]
	return val, ok
}

// AssetID returns the GLPI asset identifier of a host
func (inv *Inventory) AssetID(host string) (int, bool) {
	val, ok := inv.GetVariable(host, VarAssetID)
	if !ok {
		return 0, false
	}
	id, ok := val.(int)
	return id, ok
}

// HasHost reports whether a host is registered
func (inv *Inventory) HasHost(name string) bool {
	_, ok := inv.vars[name]
	return ok
}

// Hosts returns host names in registration order
func (inv *Inventory) Hosts() []string {
	out := make([]string, len(inv.hosts))
	copy(out, inv.hosts)
	return out
}

// HostVars returns a copy of the variables of a host
func (inv *Inventory) HostVars(name string) map[string]any {
	vars, ok := inv.vars[name]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}

// Len returns the number of registered hosts
func (inv *Inventory) Len() int {
	return len(inv.hosts)
}

// AssetIDs returns the hostname to asset identifier mapping
func (inv *Inventory) AssetIDs() map[string]int {
	out := make(map[string]int, len(inv.hosts))
	for _, host := range inv.hosts {
		if id, ok := inv.AssetID(host); ok {
			out[host] = id
		}
	}
	return out
}
