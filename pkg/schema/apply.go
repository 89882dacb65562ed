package schema

import (
	"reflect"

	"github.com/go-drift/observe/pkg/model"
	"github.com/go-drift/observe/pkg/observable"
)

// Apply declares the properties of def on m and returns them by name.
// Scalars are declared as any-typed values with deep equality, lists as
// List[any], maps as Map[string, any]. The definition is validated first,
// so Apply never panics on a well-formed model that does not collide with
// properties already declared on m.
func Apply(def ModelDef, m *model.Model) (map[string]observable.Property, error) {
	if err := validateModel(def, ""); err != nil {
		return nil, err
	}

	props := make(map[string]observable.Property, len(def.Properties))
	for _, p := range def.Properties {
		switch p.Kind {
		case "", KindScalar:
			props[p.Name] = model.ValueFunc(m, p.Name, p.Initial, equalAny)
		case KindList:
			items, _ := p.Initial.([]any)
			props[p.Name] = model.List(m, p.Name, items...)
		case KindMap:
			// Seed before attaching so construction does not notify
			// observers already registered on m.
			mp := observable.NewMap[string, any](p.Name)
			if seed, ok := p.Initial.(map[string]any); ok {
				for k, v := range seed {
					mp.Set(k, v)
				}
			}
			model.Attach(m, mp)
			props[p.Name] = mp
		case KindSignal:
			props[p.Name] = model.Signal(m, p.Name)
		}
	}
	return props, nil
}

// equalAny compares schema-declared scalars. YAML initials decode to
// interface values that may hold slices or maps, so == is not safe here.
func equalAny(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
