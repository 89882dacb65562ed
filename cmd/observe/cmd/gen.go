package cmd

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/go-drift/observe/cmd/observe/internal/config"
	"github.com/go-drift/observe/pkg/schema"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Generate Go declarations from a schema",
		Long: `Generate typed Go property declarations from a model schema file.

For every model in the schema, gen emits a struct bundling the model and
its observable properties, plus a constructor that declares them. The
output package and directory come from observe.yaml (gen.package,
gen.output) and default to "models".

Flags:
  --out DIR   Write the generated file to DIR instead of the configured
              output directory.`,
		Usage: "observe gen <schema.yaml> [--out DIR]",
		Run:   runGen,
	})
}

func runGen(args []string) error {
	var outDir string
	var files []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("--out requires a directory path")
			}
			outDir = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--out="):
			outDir = strings.TrimPrefix(args[i], "--out=")
		default:
			files = append(files, args[i])
		}
	}
	if len(files) != 1 {
		return fmt.Errorf("gen takes exactly one schema file")
	}

	s, err := schema.Load(files[0])
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	res, err := config.Resolve(root)
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = filepath.Join(root, res.GenOutput)
	}

	src, warnings, err := Generate(res.GenPackage, s)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("generated code does not compile: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(files[0]), filepath.Ext(files[0]))
	target := filepath.Join(outDir, base+"_gen.go")
	if err := os.WriteFile(target, formatted, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d model(s))\n", target, len(s.Models))
	return nil
}

// Generate renders Go declarations for every model in the schema.
// It returns the unformatted source plus warnings for schema content that
// cannot be expressed in generated code (and is silently dropped).
func Generate(pkg string, s *schema.Schema) ([]byte, []string, error) {
	var b strings.Builder
	var warnings []string

	b.WriteString("// Code generated by observe gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import (\n")
	b.WriteString("\t\"github.com/go-drift/observe/pkg/model\"\n")
	b.WriteString("\t\"github.com/go-drift/observe/pkg/observable\"\n")
	b.WriteString(")\n\n")

	for _, def := range s.Models {
		typeName := strcase.ToCamel(def.Name) + "Model"

		fields := make(map[string]string, len(def.Properties))
		for _, p := range def.Properties {
			field := strcase.ToCamel(p.Name)
			if prev, dup := fields[field]; dup {
				return nil, nil, fmt.Errorf("model %q: properties %q and %q map to the same field name %s",
					def.Name, prev, p.Name, field)
			}
			fields[field] = p.Name
		}

		fmt.Fprintf(&b, "// %s bundles the observable properties of %q.\n", typeName, def.Name)
		fmt.Fprintf(&b, "type %s struct {\n", typeName)
		fmt.Fprintf(&b, "\tModel *model.Model\n\n")
		for _, p := range def.Properties {
			fmt.Fprintf(&b, "\t%s %s\n", strcase.ToCamel(p.Name), fieldType(p))
		}
		b.WriteString("}\n\n")

		fmt.Fprintf(&b, "// New%s creates the model and declares its properties.\n", typeName)
		fmt.Fprintf(&b, "func New%s(opts ...model.Option) *%s {\n", typeName, typeName)
		b.WriteString("\tm := model.New(opts...)\n")
		fmt.Fprintf(&b, "\tout := &%s{\n", typeName)
		b.WriteString("\t\tModel: m,\n")
		var seeds []string
		for _, p := range def.Properties {
			decl, seedLines, ws := declaration(def.Name, p)
			warnings = append(warnings, ws...)
			fmt.Fprintf(&b, "\t\t%s: %s,\n", strcase.ToCamel(p.Name), decl)
			seeds = append(seeds, seedLines...)
		}
		b.WriteString("\t}\n")
		for _, line := range seeds {
			fmt.Fprintf(&b, "\t%s\n", line)
		}
		b.WriteString("\treturn out\n")
		b.WriteString("}\n\n")
	}

	return []byte(b.String()), warnings, nil
}

// fieldType returns the struct field type for a property declaration.
func fieldType(p schema.PropertyDef) string {
	switch p.Kind {
	case "", schema.KindScalar:
		return "*observable.Value[" + scalarType(p.Initial) + "]"
	case schema.KindList:
		return "*observable.List[any]"
	case schema.KindMap:
		return "*observable.Map[string, any]"
	case schema.KindSignal:
		return "*observable.Signal"
	}
	return "observable.Property"
}

// declaration returns the constructor expression for a property, plus any
// post-construction seed statements (map entries) and warnings.
func declaration(modelName string, p schema.PropertyDef) (string, []string, []string) {
	name := strconv.Quote(p.Name)
	switch p.Kind {
	case "", schema.KindScalar:
		t := scalarType(p.Initial)
		if t == "any" {
			var warnings []string
			if p.Initial != nil {
				warnings = append(warnings, fmt.Sprintf(
					"model %q: scalar %q initial cannot be rendered; generated value starts nil", modelName, p.Name))
			}
			return fmt.Sprintf("model.ValueFunc[any](m, %s, nil, nil)", name), nil, warnings
		}
		lit, _ := literal(p.Initial)
		return fmt.Sprintf("model.Value[%s](m, %s, %s)", t, name, lit), nil, nil

	case schema.KindList:
		items, _ := p.Initial.([]any)
		var lits []string
		for _, item := range items {
			lit, ok := literal(item)
			if !ok {
				return fmt.Sprintf("model.List[any](m, %s)", name), nil, []string{
					fmt.Sprintf("model %q: list %q initial contains values that cannot be rendered; seeding skipped", modelName, p.Name),
				}
			}
			lits = append(lits, lit)
		}
		if len(lits) == 0 {
			return fmt.Sprintf("model.List[any](m, %s)", name), nil, nil
		}
		return fmt.Sprintf("model.List[any](m, %s, %s)", name, strings.Join(lits, ", ")), nil, nil

	case schema.KindMap:
		decl := fmt.Sprintf("model.MapOf[string, any](m, %s)", name)
		seed, _ := p.Initial.(map[string]any)
		var lines, warnings []string
		field := strcase.ToCamel(p.Name)
		keys := make([]string, 0, len(seed))
		for k := range seed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lit, ok := literal(seed[k])
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"model %q: map %q entry %q cannot be rendered; skipped", modelName, p.Name, k))
				continue
			}
			lines = append(lines, fmt.Sprintf("out.%s.Set(%s, %s)", field, strconv.Quote(k), lit))
		}
		return decl, lines, warnings

	case schema.KindSignal:
		return fmt.Sprintf("model.Signal(m, %s)", name), nil, nil
	}
	return "nil", nil, nil
}

// scalarType maps a YAML initial value to a Go type name.
func scalarType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int:
		return "int"
	case int64:
		return "int64"
	case float64:
		return "float64"
	default:
		return "any"
	}
}

// literal renders a YAML scalar as a Go literal.
func literal(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	default:
		return "", false
	}
}
