package yamlbook

// SeedConfig is the top-level structure of a wordbook seed file.
type SeedConfig struct {
	Words []WordProps `yaml:"words"`
}

// WordProps contains one seed entry. Only word is required.
type WordProps struct {
	Word     string `yaml:"word"`
	Meaning  string `yaml:"meaning,omitempty"`
	Sentence string `yaml:"sentence,omitempty"`
	URL      string `yaml:"url,omitempty"`

	// Registered optionally backdates the entry, RFC3339.
	Registered string `yaml:"registered,omitempty"`
}
