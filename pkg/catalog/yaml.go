package catalog

// yamlStep is one builder call in a catalog file. Exactly one kind field is
// set; at most one quantifier field may accompany it.
type yamlStep struct {
	// kinds
	Text         *string      `yaml:"text,omitempty"`
	OptionalText *string      `yaml:"optional_text,omitempty"`
	Raw          *string      `yaml:"raw,omitempty"`
	Class        string       `yaml:"class,omitempty"`
	AnyOf        *string      `yaml:"any_of,omitempty"`
	AnyExcept    *string      `yaml:"any_except,omitempty"`
	Range        string       `yaml:"range,omitempty"`
	Anchor       string       `yaml:"anchor,omitempty"`
	Or           bool         `yaml:"or,omitempty"`
	Use          string       `yaml:"use,omitempty"`
	Group        []yamlStep   `yaml:"group,omitempty"`
	Capture      []yamlStep   `yaml:"capture,omitempty"`
	Either       [][]yamlStep `yaml:"either,omitempty"`

	// quantifiers
	Exactly    *int  `yaml:"exactly,omitempty"`
	AtLeast    *int  `yaml:"at_least,omitempty"`
	Between    []int `yaml:"between,omitempty"`
	Optional   bool  `yaml:"optional,omitempty"`
	ZeroOrMore bool  `yaml:"zero_or_more,omitempty"`
	OneOrMore  bool  `yaml:"one_or_more,omitempty"`
}

// yamlPattern is the intermediate struct for a catalog pattern. Either
// Pattern (raw regex) or Steps is set.
type yamlPattern struct {
	ID               string     `yaml:"id"`
	Name             string     `yaml:"name"`
	Description      string     `yaml:"description,omitempty"`
	Pattern          string     `yaml:"pattern,omitempty"`
	Steps            []yamlStep `yaml:"steps,omitempty"`
	IgnoreCase       bool       `yaml:"ignore_case,omitempty"`
	Multiline        bool       `yaml:"multiline,omitempty"`
	Singleline       bool       `yaml:"singleline,omitempty"`
	Compiled         bool       `yaml:"compiled,omitempty"`
	Keywords         []string   `yaml:"keywords,omitempty"`
	Categories       []string   `yaml:"categories,omitempty"`
	Examples         []string   `yaml:"examples,omitempty"`
	NegativeExamples []string   `yaml:"negative_examples,omitempty"`
}

// yamlFragment is a named step list reusable through a `use` step.
type yamlFragment struct {
	ID    string     `yaml:"id"`
	Steps []yamlStep `yaml:"steps"`
}

// yamlCatalogFile represents the top-level structure of a catalog YAML file.
type yamlCatalogFile struct {
	Fragments []yamlFragment `yaml:"fragments,omitempty"`
	Patterns  []yamlPattern  `yaml:"patterns"`
}
