package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/contentgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Validate performs a strict parity check between component manifests and the
// registered Go input structs. It checks both the presence of inputs and the
// compatibility of their declared types.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for key, def := range r.manifests {
		comp, ok := r.components[key]
		if !ok {
			logger.Warn("Manifest declares a content type with no registered component.", "type", def.Type)
			continue
		}

		if comp.InputType == nil {
			if len(def.Inputs) > 0 {
				errs = append(errs, fmt.Sprintf("component '%s': manifest declares inputs, but the Go renderer has no input struct", def.Type))
			}
			continue
		}

		manifestInputs := make(map[string]struct{})
		for name := range def.Inputs {
			manifestInputs[name] = struct{}{}
		}

		goInputs := make(map[string]reflect.StructField)
		inputType := comp.InputType
		for i := 0; i < inputType.NumField(); i++ {
			field := inputType.Field(i)
			if !field.IsExported() {
				continue
			}
			tag := field.Tag.Get("cms")
			tagName := strings.Split(tag, ",")[0]
			if tagName != "" && tagName != "-" {
				goInputs[tagName] = field
			}
		}

		// Check for presence mismatches
		for name := range goInputs {
			if _, ok := manifestInputs[name]; !ok {
				errs = append(errs, fmt.Sprintf("component '%s': Go struct has field for input '%s' which is not declared in manifest", def.Type, name))
			}
		}
		for name := range manifestInputs {
			if _, ok := goInputs[name]; !ok {
				errs = append(errs, fmt.Sprintf("component '%s': manifest declares input '%s' which is not found in Go struct", def.Type, name))
			}
		}

		// Check for type mismatches
		for name, inputDef := range def.Inputs {
			goField, ok := goInputs[name]
			if !ok {
				continue // Already handled by presence check
			}

			manifestType := inputDef.Type
			if manifestType.Equals(cty.DynamicPseudoType) {
				logger.Warn("Manifest input uses 'type = any', which disables static type checking.", "component", def.Type, "input", name)
				continue
			}

			goFieldType, err := gocty.ImpliedType(reflect.Zero(goField.Type).Interface())
			if err != nil {
				errs = append(errs, fmt.Sprintf("component '%s', input '%s': could not imply cty type from Go field type %s: %v", def.Type, name, goField.Type, err))
				continue
			}

			if !manifestType.Equals(goFieldType) {
				errs = append(errs, fmt.Sprintf("component '%s', input '%s': type mismatch. Manifest requires '%s' but Go struct field '%s' provides '%s'",
					def.Type, name, manifestType.FriendlyName(), goField.Name, goFieldType.FriendlyName()))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
