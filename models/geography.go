package models

// Region is a first-level administrative area with its ordered list of
// communes.
type Region struct {
	Name     string   `json:"name"`
	Communes []string `json:"communes"`
}
