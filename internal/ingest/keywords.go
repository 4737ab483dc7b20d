package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordSets holds the classifier's keyword lists. Keeping them as data
// rather than inline conditionals lets deployments extend the lists without
// a rebuild.
type KeywordSets struct {
	Functional []string `yaml:"functional"`
	Technical  []string `yaml:"technical"`
}

// DefaultKeywordSets returns the built-in French/English keyword lists.
func DefaultKeywordSets() KeywordSets {
	return KeywordSets{
		Functional: []string{
			"dashboard", "interface", "menu", "écran", "affichage",
			"navigation", "bouton", "formulaire", "page", "visibles",
		},
		Technical: []string{
			"api", "webhook", "synchronisation", "base de données",
			"serveur", "erreur système", "crash", "migration", "journal",
			"e-commerce", "comptable",
		},
	}
}

// LoadKeywordSets reads keyword lists from a YAML file. An empty path keeps
// the defaults; a missing list inside the file also keeps its default.
func LoadKeywordSets(path string) (KeywordSets, error) {
	sets := DefaultKeywordSets()
	if path == "" {
		return sets, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return sets, fmt.Errorf("read keyword file: %w", err)
	}
	var loaded KeywordSets
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return sets, fmt.Errorf("parse keyword file: %w", err)
	}
	if len(loaded.Functional) > 0 {
		sets.Functional = loaded.Functional
	}
	if len(loaded.Technical) > 0 {
		sets.Technical = loaded.Technical
	}
	return sets, nil
}
