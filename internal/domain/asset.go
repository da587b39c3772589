package domain

// Asset is a computer record returned by the GLPI Computer endpoint
type Asset struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HasName reports whether the asset can be registered as a host
func (a Asset) HasName() bool {
	return a.Name != ""
}

// Credentials holds the tokens needed to open a GLPI session
type Credentials struct {
	AppToken  string
	UserToken string
}

// Complete returns true when both tokens are set
func (c Credentials) Complete() bool {
	return c.AppToken != "" && c.UserToken != ""
}
