// Package domain defines the core types of the GLPI inventory.
//
// # Core Types
//
// Asset is a computer record as reported by GLPI: a numeric identifier
// and an optional name.
//
// Credentials holds the two API tokens GLPI requires to open a session.
//
// Inventory is the host registry the fetcher populates. Hosts are kept in
// registration order and each carries a small set of variables, currently
// only the GLPI asset identifier (glpi_id).
//
// # Groups
//
// Hosts are registered without an explicit group, so they land in the
// implicit "ungrouped" group, itself a child of "all", the same layout
// Ansible produces for hosts added without a group.
//
// # Design Principles
//
// - No network or file access
// - Nothing outlives a single inventory run
package domain
