package docfx

// TypeItem is one documented type (class, struct, enum or interface),
// assembled from the first record of a ManagedReference metadata file.
// TypeItems are built once by the loader and never mutated afterwards.
type TypeItem struct {
	UID         string
	Name        string
	FullName    string
	Kind        string // Class, Struct, Enum, Interface
	Summary     string
	Remarks     string
	Syntax      string // raw declaration signature
	Namespace   string
	Parent      string
	Inheritance []string // short names, System.* filtered out
	Implements  []string // short names, System.* filtered out
	ChildUIDs   []string
	Members     []MemberItem // in metadata file order
	Example     string
}

// MemberItem is one member (method, property, constructor or field) of a
// TypeItem. Owned exclusively by its parent type.
type MemberItem struct {
	UID               string
	Name              string
	Kind              string // Method, Property, Constructor, Field
	Summary           string
	Syntax            string
	Parameters        []Parameter
	ReturnType        string
	ReturnDescription string
	Example           string
}

// Parameter describes one parameter of a member signature.
type Parameter struct {
	Name        string
	Type        string
	Description string
}
