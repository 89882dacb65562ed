package cmd

import (
	"fmt"

	"github.com/go-drift/observe/pkg/schema"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a model schema file",
		Long: `Validate a model schema file.

Checks that model and property names are valid identifiers, that property
kinds are known (scalar, list, map, signal), and that initial values match
their kinds. Exits non-zero on the first problem found.`,
		Usage: "observe validate <schema.yaml>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("validate takes exactly one schema file")
	}

	s, err := schema.Load(args[0])
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	props := 0
	for _, def := range s.Models {
		props += len(def.Properties)
	}
	fmt.Printf("%s: %d model(s), %d propert(ies) OK\n", args[0], len(s.Models), props)
	return nil
}
